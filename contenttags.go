// Package contenttags provides template tags that retrieve content from any
// registered model and bind it to a rendering-context variable:
//
//	{% get_latest_objects blog.Post 5 as latest_posts %}
//	{% retrieve_object flatpages.FlatPage 12 as my_flat_page %}
//
// Query sources register under their "app.Model" label once at process start;
// the tags resolve them fresh on every render. See pkg/sources for memory,
// YAML fixture and gorm-backed sources, and pkg/engine for a template engine
// with the tags pre-installed.
package contenttags

import (
	"github.com/goliatone/go-contenttags/pkg/modelreg"
	"github.com/goliatone/go-contenttags/pkg/tags"
)

// Aliases exported via the root package for convenience.
type (
	Registry = modelreg.Registry
	Lookup   = modelreg.Lookup
	Outcome  = modelreg.Outcome
	Lister   = modelreg.Lister
	Fetcher  = modelreg.Fetcher
)

// Register installs the template tags into the host engine's process-wide tag
// table. Idempotent.
func Register() error {
	return tags.Register()
}

// MustRegister panics if tag installation fails.
func MustRegister() {
	tags.MustRegister()
}

// RegisterModel adds a query source to the default model registry.
func RegisterModel(label string, src any) error {
	return modelreg.Register(label, src)
}

// MustRegisterModel panics on registration failure. Useful for init-time
// wiring.
func MustRegisterModel(label string, src any) {
	modelreg.MustRegister(label, src)
}

// Models returns the default model registry.
func Models() *Registry {
	return modelreg.Default()
}
