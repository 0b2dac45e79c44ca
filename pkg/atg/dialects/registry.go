// Package dialects provides runtime lookup of ATG dialects by name, so
// that witness metadata (pkg/witness) can select a dialect without the
// caller importing every concrete dialect package directly.
package dialects

import (
	"fmt"
	"sync"

	"github.com/curatorsigma/critic/pkg/atg"
	"github.com/curatorsigma/critic/pkg/atg/dialects/example"
)

// Registry maps dialect names to atg.Dialect descriptors.
type Registry struct {
	mu       sync.RWMutex
	dialects map[string]atg.Dialect
}

// NewRegistry returns a Registry seeded with the built-in "example"
// dialect.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register(example.Dialect)
	return r
}

// NewEmptyRegistry returns a Registry with no dialects registered, for
// callers that build up their own set (e.g. from a seed file) rather
// than starting from the built-in defaults.
func NewEmptyRegistry() *Registry {
	return &Registry{dialects: make(map[string]atg.Dialect)}
}

// Register adds d under d.Name, replacing any dialect previously
// registered under that name.
func (r *Registry) Register(d atg.Dialect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dialects[d.Name] = d
}

// Lookup returns the dialect registered under name.
func (r *Registry) Lookup(name string) (atg.Dialect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.dialects[name]
	if !ok {
		return atg.Dialect{}, &UnknownError{Name: name}
	}
	return d, nil
}

// Names returns the names of all registered dialects.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	return names
}

// UnknownError is returned by Lookup for an unregistered dialect name.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("the ATG dialect %q does not exist. Is it registered?", e.Name)
}
