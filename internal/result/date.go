package result

import (
	"strings"
	"time"
)

// ParseDate attempts to parse a record's Date column into a time.Time.
// Returns the zero value if parsing fails. NSAA pages write dates as
// "9/4/2025" or "09/04/2025"; older seasons and tournament rows sometimes
// carry "Sep 4" or "9/4" without a year, which gets the current year.
//
// Only the read-side commands (filtering, sorting, calendar export)
// interpret dates; extraction keeps the raw text untouched.
func ParseDate(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}
	}

	layouts := []string{
		"1/2/2006",
		"01/02/2006",
		"1/2/06",
		"Jan 2 2006",
		"Jan 2, 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}

	// Yearless forms assume the current year.
	yearless := []string{
		"1/2",
		"Jan 2",
	}
	for _, layout := range yearless {
		if t, err := time.Parse(layout, text); err == nil {
			now := time.Now()
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return time.Time{}
}
