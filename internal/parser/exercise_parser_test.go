package parser

import (
	"reflect"
	"testing"
)

// TestParseExercise covers the NAME:SETS spec variants.
func TestParseExercise(t *testing.T) {
	tests := []struct {
		input string
		want  ParsedExercise
	}{
		{"Squat:3", ParsedExercise{Name: "Squat", Sets: 3}},
		{"Squat x3", ParsedExercise{Name: "Squat", Sets: 3}},
		{"Squat x 3", ParsedExercise{Name: "Squat", Sets: 3}},
		{"Incline bench:4", ParsedExercise{Name: "Incline bench", Sets: 4}},
		{"  Leg press : 5 ", ParsedExercise{Name: "Leg press", Sets: 5}},
		{"Pull-ups", ParsedExercise{Name: "Pull-ups", Sets: 3}}, // default sets
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExercise(tt.input, 3)
			if err != nil {
				t.Fatalf("ParseExercise(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseExercise(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseExerciseInvalid rejects empty names and non-positive set
// counts.
func TestParseExerciseInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", ":3", "Squat:0"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseExercise(input, 3); err == nil {
				t.Errorf("ParseExercise(%q) succeeded, want error", input)
			}
		})
	}
}

// TestParseExercises keeps entry order and fails on the first bad
// spec.
func TestParseExercises(t *testing.T) {
	got, err := ParseExercises([]string{"Squat:3", "Leg press:4", "Calf raises"}, 2)
	if err != nil {
		t.Fatalf("ParseExercises: %v", err)
	}
	want := []ParsedExercise{
		{Name: "Squat", Sets: 3},
		{Name: "Leg press", Sets: 4},
		{Name: "Calf raises", Sets: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseExercises = %+v, want %+v", got, want)
	}

	if _, err := ParseExercises([]string{"Squat:3", "Bad:0"}, 2); err == nil {
		t.Error("ParseExercises with a bad spec succeeded, want error")
	}
}
