package engine

import (
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizeOnce   sync.Once
	sanitizePolicy *bluemonday.Policy
)

// registerDefaultFilters installs the filters every engine instance relies
// on. pongo2 filters are process-wide, so existing registrations win.
func registerDefaultFilters() {
	if !pongo2.FilterExists("sanitize") {
		_ = pongo2.RegisterFilter("sanitize", filterSanitize)
	}
}

// filterSanitize strips markup that is unsafe in user-generated content and
// marks the remainder safe for autoescaping. Model content often carries
// stored HTML; this is the supported way to emit it.
func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsSafeValue(contentPolicy().Sanitize(in.String())), nil
}

func contentPolicy() *bluemonday.Policy {
	sanitizeOnce.Do(func() {
		sanitizePolicy = bluemonday.UGCPolicy()
	})
	return sanitizePolicy
}
