package validator

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultMinYear is the lower bound of a year field without minYear.
const DefaultMinYear = 1900

var yearRegex = regexp.MustCompile(`^[0-9]{4}$`)

// YearFormat validates that value is exactly four ASCII digits.
func YearFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return yearRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Year must be a four-digit number",
			TranslationKey: "validation.year_format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// YearBetween validates that value is a year within [min, max].
// Values that are not integers fail the check.
func YearBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			year, err := strconv.Atoi(value)
			if err != nil {
				return false
			}
			return year >= min && year <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Year must be between %d and %d", min, max),
			TranslationKey: "validation.year_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
