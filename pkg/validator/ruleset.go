package validator

import (
	"fmt"
	"strings"
)

// FieldType selects the type-specific checks of a RuleSet.
type FieldType string

const (
	TypeNone   FieldType = ""
	TypeEmail  FieldType = "email"
	TypeDate   FieldType = "date"
	TypeYear   FieldType = "year"
	TypeNumber FieldType = "number"
)

// Valid reports whether t is a known field type.
func (t FieldType) Valid() bool {
	switch t {
	case TypeNone, TypeEmail, TypeDate, TypeYear, TypeNumber:
		return true
	}
	return false
}

// RuleSet is the declarative validation configuration of one field.
// Nil pointers mean the bound is absent.
type RuleSet struct {
	Required  bool      `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength *int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Type      FieldType `json:"type,omitempty" yaml:"type,omitempty"`

	MinDate *string  `json:"minDate,omitempty" yaml:"minDate,omitempty"`
	MaxDate *string  `json:"maxDate,omitempty" yaml:"maxDate,omitempty"`
	MinYear *int     `json:"minYear,omitempty" yaml:"minYear,omitempty"`
	MaxYear *int     `json:"maxYear,omitempty" yaml:"maxYear,omitempty"`
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Validate rejects a rule set whose type is unknown. Bounds are not checked.
func (rs RuleSet) Validate() error {
	if !rs.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFieldType, rs.Type)
	}
	return nil
}

// Rules expands the rule set into the ordered chain evaluated for value:
// required, minLength, maxLength, then the type-specific rules in the order
// year, email, date, number. value is expected to be trimmed already.
// A nil clock falls back to SystemClock.
func (rs RuleSet) Rules(field, value string, clock Clock) []Rule {
	rules := make([]Rule, 0, 8)

	if rs.Required {
		rules = append(rules, Required(field, value))
	}
	if rs.MinLength != nil && *rs.MinLength > 0 {
		rules = append(rules, MinLen(field, value, *rs.MinLength))
	}
	if rs.MaxLength != nil && *rs.MaxLength > 0 {
		rules = append(rules, MaxLen(field, value, *rs.MaxLength))
	}

	if rs.Type == TypeYear {
		if clock == nil {
			clock = SystemClock
		}
		minYear := DefaultMinYear
		if rs.MinYear != nil {
			minYear = *rs.MinYear
		}
		maxYear := clock.Now().Year()
		if rs.MaxYear != nil {
			maxYear = *rs.MaxYear
		}
		rules = append(rules,
			YearFormat(field, value),
			YearBetween(field, value, minYear, maxYear),
		)
	}

	if rs.Type == TypeEmail {
		rules = append(rules, Email(field, value))
	}

	if rs.Type == TypeDate {
		rules = append(rules, Date(field, value))
		if rs.MinDate != nil && *rs.MinDate != "" {
			rules = append(rules, DateNotBefore(field, value, *rs.MinDate))
		}
		if rs.MaxDate != nil && *rs.MaxDate != "" {
			rules = append(rules, DateNotAfter(field, value, *rs.MaxDate))
		}
	}

	if rs.Type == TypeNumber {
		rules = append(rules, Number(field, value))
		if rs.Min != nil {
			rules = append(rules, MinNumber(field, value, *rs.Min))
		}
		if rs.Max != nil {
			rules = append(rules, MaxNumber(field, value, *rs.Max))
		}
	}

	return rules
}

// Check trims value and returns the first failing rule of rs, or nil when
// the value is acceptable.
func Check(field, value string, rs RuleSet, clock Clock) *ValidationError {
	return First(rs.Rules(field, strings.TrimSpace(value), clock)...)
}

// Ptr returns a pointer to v. It keeps rule set literals short.
func Ptr[T any](v T) *T {
	return &v
}
