// Package date provides parsing and normalization helpers for date strings
// and calendar week extraction.
package date

import (
	"time"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

// ParseMonth parses a "YYYY-M" month reference, accepting both one and two
// digit months, and returns the year and month.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-1", s)
	if err != nil {
		return 0, 0, apperr.Wrap("date.ParseMonth", apperr.InvalidInput, err, "parse month %q", s)
	}
	return t.Year(), t.Month(), nil
}

// Parse tries each layout in order and returns the first successful parse.
func Parse(s string, layouts ...string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.New("date.Parse", apperr.InvalidInput, "could not parse date %q with any of the specified layouts", s)
}

// Normalize converts a date string from one of the input layouts to the
// output layout. An empty input passes through as empty when allowEmpty is
// set, and is rejected otherwise.
func Normalize(s string, inputLayouts []string, outputLayout string, allowEmpty bool) (string, error) {
	if s == "" {
		if allowEmpty {
			return "", nil
		}
		return "", apperr.New("date.Normalize", apperr.InvalidInput, "empty date")
	}
	t, err := Parse(s, inputLayouts...)
	if err != nil {
		return "", err
	}
	return t.Format(outputLayout), nil
}
