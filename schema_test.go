package formkit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const signupSchema = `
fields:
  - id: email
    label: Email
    input: email
    rules:
      required: true
      type: email
  - id: age
    rules:
      type: number
      min: 18
      max: 120
  - id: nick
    rules:
      minLength: 3
      maxLength: 12
`

func TestLoadSchema(t *testing.T) {
	t.Parallel()

	t.Run("decodes fields and rules", func(t *testing.T) {
		fields, err := formkit.LoadSchema(strings.NewReader(signupSchema))
		require.NoError(t, err)
		require.Len(t, fields, 3)

		assert.Equal(t, "email", fields[0].ID)
		assert.Equal(t, "Email", fields[0].Label)
		assert.True(t, fields[0].Rules.Required)
		assert.Equal(t, validator.TypeEmail, fields[0].Rules.Type)

		require.NotNil(t, fields[1].Rules.Min)
		assert.InDelta(t, 18.0, *fields[1].Rules.Min, 0)
		assert.Nil(t, fields[1].Rules.MinLength)

		require.NotNil(t, fields[2].Rules.MaxLength)
		assert.Equal(t, 12, *fields[2].Rules.MaxLength)
	})

	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"empty document", "", formkit.ErrNoFields},
		{"no fields", "fields: []", formkit.ErrNoFields},
		{"missing id", "fields:\n  - label: Email", formkit.ErrInvalidSchema},
		{"duplicate id", "fields:\n  - id: a\n  - id: a", formkit.ErrDuplicateField},
		{"unknown type", "fields:\n  - id: a\n    rules:\n      type: phone", validator.ErrUnknownFieldType},
		{"unknown key", "fields:\n  - id: a\n    pattern: x", formkit.ErrInvalidSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formkit.LoadSchema(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadSchemaFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(signupSchema), 0o600))

	fields, err := formkit.LoadSchemaFile(path)
	require.NoError(t, err)
	assert.Len(t, fields, 3)

	_, err = formkit.LoadSchemaFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, formkit.ErrInvalidSchema)
}

func TestDefaultFields(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, f := range formkit.DefaultFields() {
		assert.False(t, seen[f.ID], f.ID)
		seen[f.ID] = true
		assert.NoError(t, f.Rules.Validate())
	}
}
