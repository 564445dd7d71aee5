package profile

import (
	"errors"
	"fmt"
	"sort"
)

// Registry errors. Construction errors are fatal configuration errors;
// ErrUnknownProfile is returned from Get for unregistered types.
var (
	// ErrUnknownProfile is returned when a profile type is not registered.
	ErrUnknownProfile = errors.New("unknown profile type")

	// ErrDuplicateProfile indicates two definitions share a type name.
	ErrDuplicateProfile = errors.New("duplicate profile type")

	// ErrConflictingTier indicates a field appears in more than one tier.
	ErrConflictingTier = errors.New("field declared in multiple tiers")

	// ErrBadDefinition indicates a malformed profile definition or constraint.
	ErrBadDefinition = errors.New("malformed profile definition")
)

// Registry holds profile definitions keyed by type name. It is immutable
// after construction and therefore safe for unsynchronized concurrent reads.
type Registry struct {
	definitions map[string]ProfileDefinition
}

// NewRegistry builds a registry from the given definitions. Any integrity
// violation (duplicate type, field in multiple tiers, malformed constraint)
// is a fatal configuration error.
func NewRegistry(defs ...ProfileDefinition) (*Registry, error) {
	definitions := make(map[string]ProfileDefinition, len(defs))
	for _, def := range defs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := definitions[def.Type]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProfile, def.Type)
		}
		definitions[def.Type] = def
	}
	return &Registry{definitions: definitions}, nil
}

// DefaultRegistry returns a registry loaded with the built-in profile
// definitions. The built-ins are integrity-checked by tests, so construction
// cannot fail.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinDefinitions()...)
	if err != nil {
		panic("profile: invalid built-in definitions: " + err.Error())
	}
	return r
}

// Get returns the definition for a profile type. Lookup is case-sensitive;
// callers normalize input before calling. Unknown types return an error
// wrapping ErrUnknownProfile.
func (r *Registry) Get(profileType string) (ProfileDefinition, error) {
	def, ok := r.definitions[profileType]
	if !ok {
		return ProfileDefinition{}, fmt.Errorf("%w: %q", ErrUnknownProfile, profileType)
	}
	return def, nil
}

// Types returns the registered profile type names in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.definitions))
	for t := range r.definitions {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.definitions)
}
