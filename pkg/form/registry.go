package form

// DefaultSlotPrefix prefixes a field id to form its error slot id.
const DefaultSlotPrefix = "error_"

// Registry maps field ids to error slot ids. It is built once during setup
// and only read afterwards; Register is not safe to call concurrently with
// lookups.
type Registry struct {
	prefix string
	slots  map[string]string
	fields []string
}

// NewRegistry registers fieldIDs with the default slot naming.
func NewRegistry(fieldIDs ...string) *Registry {
	return NewRegistryWithPrefix(DefaultSlotPrefix, fieldIDs...)
}

// NewRegistryWithPrefix registers fieldIDs with slot ids prefix + field id.
func NewRegistryWithPrefix(prefix string, fieldIDs ...string) *Registry {
	r := &Registry{prefix: prefix, slots: make(map[string]string, len(fieldIDs))}
	for _, id := range fieldIDs {
		r.Register(id, prefix+id)
	}
	return r
}

// Register maps fieldID to slotID, keeping the original position when the
// field is already known.
func (r *Registry) Register(fieldID, slotID string) {
	if _, ok := r.slots[fieldID]; !ok {
		r.fields = append(r.fields, fieldID)
	}
	r.slots[fieldID] = slotID
}

// SlotID returns the registered slot of fieldID, or the prefix convention for
// unregistered fields.
func (r *Registry) SlotID(fieldID string) string {
	if slot, ok := r.slots[fieldID]; ok {
		return slot
	}
	return r.prefix + fieldID
}

func (r *Registry) Has(fieldID string) bool {
	_, ok := r.slots[fieldID]
	return ok
}

// Fields returns registered field ids in registration order.
func (r *Registry) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Slots returns registered slot ids in registration order.
func (r *Registry) Slots() []string {
	out := make([]string, 0, len(r.fields))
	for _, id := range r.fields {
		out = append(out, r.slots[id])
	}
	return out
}
