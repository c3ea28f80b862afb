package validator

import (
	"fmt"
	"time"
)

// dateLayouts are tried in order. Layouts without a zone resolve to UTC.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate parses value with the accepted date layouts.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date validates that value parses as a calendar date.
func Date(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseDate(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid date",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateNotBefore validates that value is not earlier than minDate.
// The check passes when either side does not parse.
func DateNotBefore(field, value, minDate string) Rule {
	return Rule{
		Check: func() bool {
			v, ok := ParseDate(value)
			if !ok {
				return true
			}
			bound, ok := ParseDate(minDate)
			if !ok {
				return true
			}
			return !v.Before(bound)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Date cannot be earlier than %s", minDate),
			TranslationKey: "validation.date_min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   minDate,
			},
		},
	}
}

// DateNotAfter validates that value is not later than maxDate.
// The check passes when either side does not parse.
func DateNotAfter(field, value, maxDate string) Rule {
	return Rule{
		Check: func() bool {
			v, ok := ParseDate(value)
			if !ok {
				return true
			}
			bound, ok := ParseDate(maxDate)
			if !ok {
				return true
			}
			return !v.After(bound)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Date cannot be later than %s", maxDate),
			TranslationKey: "validation.date_max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   maxDate,
			},
		},
	}
}
