package formkit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FormField describes one input of the form.
type FormField struct {
	ID    string            `yaml:"id"`
	Label string            `yaml:"label"`
	Input string            `yaml:"input"`
	Rules validator.RuleSet `yaml:"rules"`
}

type schema struct {
	Fields []FormField `yaml:"fields"`
}

// LoadSchema decodes a YAML field schema and checks it.
func LoadSchema(r io.Reader) ([]FormField, error) {
	var s schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoFields
		}
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if err := checkFields(s.Fields); err != nil {
		return nil, err
	}
	return s.Fields, nil
}

// LoadSchemaFile reads a schema from path.
func LoadSchemaFile(path string) ([]FormField, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	defer f.Close()
	return LoadSchema(f)
}

func checkFields(fields []FormField) error {
	if len(fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.ID == "" {
			return fmt.Errorf("%w: field %d has no id", ErrInvalidSchema, i)
		}
		if seen[f.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.ID)
		}
		seen[f.ID] = true
		if err := f.Rules.Validate(); err != nil {
			return errors.Join(ErrInvalidSchema, fmt.Errorf("field %s: %w", f.ID, err))
		}
	}
	return nil
}

// DefaultFields is the demo form used when no schema is configured.
func DefaultFields() []FormField {
	return []FormField{
		{
			ID: "name", Label: "Name", Input: "text",
			Rules: validator.RuleSet{Required: true, MinLength: validator.Ptr(2), MaxLength: validator.Ptr(64)},
		},
		{
			ID: "email", Label: "Email", Input: "email",
			Rules: validator.RuleSet{Required: true, Type: validator.TypeEmail},
		},
		{
			ID: "birth_year", Label: "Year of birth", Input: "text",
			Rules: validator.RuleSet{Type: validator.TypeYear},
		},
		{
			ID: "start_date", Label: "Start date", Input: "date",
			Rules: validator.RuleSet{Required: true, Type: validator.TypeDate, MinDate: validator.Ptr("2020-01-01")},
		},
		{
			ID: "seats", Label: "Seats", Input: "number",
			Rules: validator.RuleSet{Required: true, Type: validator.TypeNumber, Min: validator.Ptr(1.0), Max: validator.Ptr(10.0)},
		},
	}
}
