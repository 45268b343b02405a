package core

import (
	"strings"
	"time"
)

const (
	// ISODateLayout is the machine-readable form of Expense.Date.
	ISODateLayout = "2006-01-02"
	// DisplayDateLayout renders abbreviated month, day and year.
	DisplayDateLayout = "Jan 2, 2006"
	// InvalidDateLabel is shown for dates that cannot be parsed.
	InvalidDateLabel = "Invalid Date"
)

// FormatDisplayDate renders an ISO date as "Jan 5, 2024". Malformed input is
// not an error here; it renders as InvalidDateLabel.
func FormatDisplayDate(iso string) string {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(iso))
	if err != nil {
		return InvalidDateLabel
	}
	return t.Format(DisplayDateLayout)
}

// Today returns the current local date in ISO form.
func Today() string {
	return time.Now().Format(ISODateLayout)
}
