package validator

import "regexp"

// emailRegex only checks the local@domain.tld shape. Deliverability and
// RFC 5322 conformance are out of scope.
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Email validates that value looks like an email address.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
