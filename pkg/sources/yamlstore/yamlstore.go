// Package yamlstore loads model fixtures from YAML documents and registers
// memory-backed sources for them. A fixtures document maps model labels to
// record lists; each record's "pk" field keys primary-key lookups:
//
//	blog.Post:
//	  - pk: 1
//	    title: First post
//	  - pk: 2
//	    title: Second post
package yamlstore

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contenttags/pkg/modelreg"
	"github.com/goliatone/go-contenttags/pkg/sources/memory"
)

// Record is one fixture row. Templates access its fields by name.
type Record map[string]any

// Fixtures maps model labels to their records, in document order.
type Fixtures map[string][]Record

// Load parses a fixtures document.
func Load(r io.Reader) (Fixtures, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("yamlstore: read fixtures: %w", err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("yamlstore: parse fixtures: %w", err)
	}

	for label := range fixtures {
		if !modelreg.ValidLabel(label) {
			return nil, fmt.Errorf("yamlstore: fixture key %q must be of the form app.Model", label)
		}
	}
	return fixtures, nil
}

// LoadFile parses a fixtures document from disk.
func LoadFile(path string) (Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("yamlstore: open fixtures: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Register installs a memory-backed source per label into reg, preserving the
// document order of each record list. Labels register in sorted order so a
// failure is deterministic.
func (f Fixtures) Register(reg *modelreg.Registry) error {
	labels := make([]string, 0, len(f))
	for label := range f {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		store := memory.New(recordKey)
		store.Add(f[label]...)
		if err := reg.Register(label, store); err != nil {
			return err
		}
	}
	return nil
}

// recordKey renders the pk field as a string so numeric and textual keys
// compare the same way the tag's literal argument does.
func recordKey(r Record) string {
	pk, ok := r["pk"]
	if !ok {
		return ""
	}
	return fmt.Sprint(pk)
}
