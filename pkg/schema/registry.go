package schema

import "fmt"

// Registry maps section-type keys to their schemas. It is populated once at
// startup and read-only afterwards; lookups never fail hard so callers can
// render a degraded state for unknown types.
type Registry struct {
	types   []string
	schemas map[string]SectionSchema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]SectionSchema)}
}

// Register adds a section schema under key. Duplicate keys and schemas that
// violate the structural invariants are rejected.
func (r *Registry) Register(key string, s SectionSchema) error {
	if key == "" {
		return fmt.Errorf("schema: empty section type key")
	}
	if _, ok := r.schemas[key]; ok {
		return fmt.Errorf("schema: section type %q already registered", key)
	}
	if err := s.Check(); err != nil {
		return fmt.Errorf("schema: section type %q: %w", key, err)
	}
	r.schemas[key] = s
	r.types = append(r.types, key)
	return nil
}

// Get returns the schema registered under key.
func (r *Registry) Get(key string) (SectionSchema, bool) {
	s, ok := r.schemas[key]
	return s, ok
}

// Types returns the registered section type keys in registration order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.types))
	copy(out, r.types)
	return out
}

// Default returns a registry populated with the built-in section schemas.
func Default() *Registry {
	r := NewRegistry()
	for _, b := range builtin() {
		if err := r.Register(b.key, b.schema); err != nil {
			panic(err)
		}
	}
	return r
}
