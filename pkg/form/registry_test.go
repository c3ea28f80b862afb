package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("default prefix", func(t *testing.T) {
		r := form.NewRegistry("name", "email")
		assert.Equal(t, "error_name", r.SlotID("name"))
		assert.Equal(t, []string{"name", "email"}, r.Fields())
		assert.Equal(t, []string{"error_name", "error_email"}, r.Slots())
	})

	t.Run("custom prefix", func(t *testing.T) {
		r := form.NewRegistryWithPrefix("err-", "year")
		assert.Equal(t, "err-year", r.SlotID("year"))
	})

	t.Run("register overrides slot and keeps order", func(t *testing.T) {
		r := form.NewRegistry("a", "b")
		r.Register("a", "custom_a")
		r.Register("c", "slot_c")
		assert.Equal(t, []string{"a", "b", "c"}, r.Fields())
		assert.Equal(t, []string{"custom_a", "error_b", "slot_c"}, r.Slots())
	})

	t.Run("unregistered field falls back to convention", func(t *testing.T) {
		r := form.NewRegistry()
		assert.False(t, r.Has("ghost"))
		assert.Equal(t, "error_ghost", r.SlotID("ghost"))
		assert.Empty(t, r.Slots())
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		r := form.NewRegistry("a")
		fields := r.Fields()
		fields[0] = "mutated"
		assert.Equal(t, []string{"a"}, r.Fields())
	})
}
