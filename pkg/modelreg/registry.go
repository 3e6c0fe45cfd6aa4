package modelreg

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Registry stores query sources by their two-part dotted label, providing
// discovery and duplication safeguards. The zero value is not usable; call New.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]any
}

// New creates an empty registry instance.
func New() *Registry {
	return &Registry{
		sources: make(map[string]any),
	}
}

// Register adds a source under an "app.Model" label. Duplicate or malformed
// labels return an error.
func (r *Registry) Register(label string, src any) error {
	if src == nil {
		return fmt.Errorf("modelreg: source is required")
	}
	if !ValidLabel(label) {
		return fmt.Errorf("modelreg: label %q must be of the form app.Model", label)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sources[label]; exists {
		return fmt.Errorf("modelreg: model %q already registered", label)
	}

	r.sources[label] = src
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(label string, src any) {
	if err := r.Register(label, src); err != nil {
		panic(err)
	}
}

// Resolve retrieves a source by label. The second return reports whether the
// label is registered.
func (r *Registry) Resolve(label string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.sources[label]
	return src, ok
}

// Has reports whether a model is registered.
func (r *Registry) Has(label string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sources[label]
	return ok
}

// List returns a sorted list of registered labels.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]string, 0, len(r.sources))
	for label := range r.sources {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sources)
}

// ValidLabel reports whether label is two identifiers joined by a single dot.
func ValidLabel(label string) bool {
	app, model, ok := strings.Cut(label, ".")
	return ok && isIdentifier(app) && isIdentifier(model)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

var defaultRegistry = New()

// Default returns the process-wide registry the template tags resolve against.
// It lives for the lifetime of the process; tags only ever read from it.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a source to the default registry.
func Register(label string, src any) error {
	return defaultRegistry.Register(label, src)
}

// MustRegister panics if registration on the default registry fails.
func MustRegister(label string, src any) {
	defaultRegistry.MustRegister(label, src)
}

// Resolve retrieves a source from the default registry.
func Resolve(label string) (any, bool) {
	return defaultRegistry.Resolve(label)
}
