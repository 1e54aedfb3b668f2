package builder

import "github.com/ly1hex/elua/internal/core/domain"

// Registry owns all Target nodes and maps normalized names to them.
type Registry struct {
	targets map[string]*domain.Target
	order   []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]*domain.Target),
	}
}

// Register stores a target under its normalized name. Re-registration of the
// same name overwrites the previous node.
func (r *Registry) Register(t *domain.Target) {
	name := domain.NormalizeName(t.Name)
	if _, exists := r.targets[name]; !exists {
		r.order = append(r.order, name)
	}
	r.targets[name] = t
}

// Lookup normalizes the name and returns the registered target, or nil.
func (r *Registry) Lookup(name string) *domain.Target {
	return r.targets[domain.NormalizeName(name)]
}

// List returns all registered targets in registration order.
func (r *Registry) List() []*domain.Target {
	out := make([]*domain.Target, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.targets[name])
	}
	return out
}
