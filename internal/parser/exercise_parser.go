package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParsedExercise is an exercise spec parsed from the command line.
type ParsedExercise struct {
	Name string
	Sets int
}

// exerciseRegex matches "Name:3", "Name x3" and "Name x 3". The name
// may contain spaces ("Incline bench:4").
var exerciseRegex = regexp.MustCompile(`^(.+?)\s*(?::|x)\s*(\d+)$`)

// ParseExercise parses one --exercise flag value.
// Supported formats:
// - "Squat:3"
// - "Squat x3"
// - "Squat" (falls back to defaultSets)
func ParseExercise(input string, defaultSets int) (ParsedExercise, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return ParsedExercise{}, fmt.Errorf("exercise name is empty")
	}

	if matches := exerciseRegex.FindStringSubmatch(input); len(matches) == 3 {
		name := strings.TrimSpace(matches[1])
		if name == "" {
			return ParsedExercise{}, fmt.Errorf("exercise name is empty in %q", input)
		}
		sets, err := strconv.Atoi(matches[2])
		if err != nil || sets < 1 {
			return ParsedExercise{}, fmt.Errorf("set count in %q must be a positive number", input)
		}
		return ParsedExercise{Name: name, Sets: sets}, nil
	}

	if defaultSets < 1 {
		defaultSets = 1
	}
	return ParsedExercise{Name: input, Sets: defaultSets}, nil
}

// ParseExercises parses a list of --exercise flag values, keeping the
// entry order.
func ParseExercises(inputs []string, defaultSets int) ([]ParsedExercise, error) {
	parsed := make([]ParsedExercise, 0, len(inputs))
	for _, in := range inputs {
		pe, err := ParseExercise(in, defaultSets)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, pe)
	}
	return parsed, nil
}
