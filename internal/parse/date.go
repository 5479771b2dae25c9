package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date field cannot be interpreted as a
// valid calendar date. Rows carrying such dates are rejected downstream.
var ErrInvalidDate = fmt.Errorf("invalid date")

// Layouts tried when a date does not split into exactly three segments.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Date parses a raw date string into a calendar date at local midnight.
//
// The trimmed value is split on "/" or "-". Exactly three segments are
// interpreted as day, month, year — always day-first, never month-first, so
// "12/25/2024" is an invalid date (month 25) and is rejected rather than
// reinterpreted. A two-digit year means 2000+year. Anything that does not
// split into three segments falls back to free-text layout parsing.
func Date(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, ErrInvalidDate
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(parts) == 3 {
		return dayMonthYear(parts)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func dayMonthYear(parts []string) (time.Time, error) {
	day, err := strconv.Atoi(digitsOnly(parts[0]))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	month, err := strconv.Atoi(digitsOnly(parts[1]))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	yearDigits := digitsOnly(parts[2])
	if len(yearDigits) == 2 {
		yearDigits = "20" + yearDigits
	}
	year, err := strconv.Atoi(yearDigits)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	if month < 1 || month > 12 {
		return time.Time{}, ErrInvalidDate
	}
	if day < 1 || day > daysInMonth(year, time.Month(month)) {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
