// Package validator evaluates a single form field value against a declarative
// RuleSet and reports the first rule that fails.
//
// A RuleSet is the per-field configuration a page hands to the validator:
// required, minLength/maxLength, and one optional type (email, date, year or
// number) with its type-specific bounds. RuleSet.Rules expands that
// configuration into an ordered slice of Rule values. Each Rule pairs a Check
// closure with the ValidationError describing its failure, so the evaluation
// order is data rather than a sequence of if statements:
//
//	required → minLength → maxLength → year → email → date → number
//
// First walks the slice and stops at the first failing Rule. Failures of
// several fields are collected in ValidationErrors.
//
// # Usage
//
//	minLen := 3
//	rules := validator.RuleSet{Required: true, MinLength: &minLen}
//	if verr := validator.Check("username", input, rules, validator.SystemClock); verr != nil {
//	    fmt.Println(verr.Message) // "Must be at least 3 characters"
//	}
//
// # Time-dependent rules
//
// The default upper bound of a year field is the current calendar year. The
// current time comes from a Clock so callers and tests can freeze it with
// FixedClock.
//
// # Permissive bounds
//
// Bounds that cannot be interpreted are skipped instead of failing the value:
// a non-positive length limit, an empty or unparseable minDate/maxDate. An
// empty value of type number parses as zero and is therefore accepted unless
// the field is also required or a min bound excludes zero.
package validator
