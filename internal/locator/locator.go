package locator

import (
	"fmt"

	"zoteroconv/internal/ports"
)

// Registry keeps a mapping from report-format names to locator implementations.
type Registry struct {
	locators map[string]ports.Locator
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{locators: map[string]ports.Locator{}}
}

// Register adds or replaces a locator implementation.
func (r *Registry) Register(loc ports.Locator) {
	if r.locators == nil {
		r.locators = map[string]ports.Locator{}
	}
	r.locators[loc.Name()] = loc
}

// Resolve returns a locator by format name or an error if it is absent.
func (r *Registry) Resolve(name string) (ports.Locator, error) {
	if loc, ok := r.locators[name]; ok {
		return loc, nil
	}
	return nil, fmt.Errorf("report format %s is not registered", name)
}
