package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseSessionDate parses the date formats accepted on the command
// line and normalizes them to the stored ISO form (YYYY-MM-DD).
// Supported formats:
// - yyyy-mm-dd (e.g., "2025-06-01")
// - dd/mm/yyyy (e.g., "01/06/2025")
// - "today", "tomorrow", "yesterday"
func ParseSessionDate(input string) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return "", fmt.Errorf("date is empty")
	}

	now := time.Now()
	switch input {
	case "today":
		return now.Format("2006-01-02"), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format("2006-01-02"), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format("2006-01-02"), nil
	}

	// ISO form, already the stored format
	if t, err := time.Parse("2006-01-02", input); err == nil {
		return t.Format("2006-01-02"), nil
	}

	// dd/mm/yyyy
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	if matches := dateRegex.FindStringSubmatch(input); len(matches) == 4 {
		day, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// Reject overflow dates like 31/02/2025 (handles leap years, etc.)
		if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
			return "", fmt.Errorf("invalid date %q", input)
		}
		return t.Format("2006-01-02"), nil
	}

	return "", fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, or yesterday")
}

// FormatSessionDate formats a stored ISO date for display.
func FormatSessionDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon 02 Jan 2006")
}
