package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// decimalRegex accepts plain decimal literals with an optional exponent.
// Hex floats, underscores, Inf and NaN are rejected.
var decimalRegex = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseNumber parses value as a decimal number. An empty string is zero and
// out-of-range literals saturate to ±Inf.
func ParseNumber(value string) (float64, bool) {
	if value == "" {
		return 0, true
	}
	if !decimalRegex.MatchString(value) {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Number validates that value parses as a number.
func Number(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinNumber validates that value is greater than or equal to min.
// Non-numeric values pass; pair it with Number.
func MinNumber(field, value string, min float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ParseNumber(value)
			return !ok || n >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Must be at least %s", formatNumber(min)),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNumber validates that value is less than or equal to max.
// Non-numeric values pass; pair it with Number.
func MaxNumber(field, value string, max float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ParseNumber(value)
			return !ok || n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Must be at most %s", formatNumber(max)),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
