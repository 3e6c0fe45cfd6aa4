// Package memory provides an in-memory query source. It backs tests, examples
// and the YAML fixture store; anything that needs model content without a
// database behind it.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-contenttags/pkg/modelreg"
)

// Option configures a Store before use.
type Option[T any] func(*Store[T])

// WithLess sets the store's default ordering. Items are re-sorted stably on
// every Add, so ties keep their insertion order.
func WithLess[T any](less func(a, b T) bool) Option[T] {
	return func(s *Store[T]) {
		s.less = less
	}
}

// Store holds an ordered collection of items and answers the Lister and
// Fetcher capabilities over them.
type Store[T any] struct {
	mu    sync.RWMutex
	key   func(T) string
	less  func(a, b T) bool
	items []T
}

var (
	_ modelreg.Lister  = (*Store[struct{}])(nil)
	_ modelreg.Fetcher = (*Store[struct{}])(nil)
)

// New creates a store. key derives the primary-key string used by Get; it is
// required for lookups but a store used only for listing may pass nil.
func New[T any](key func(T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{key: key}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Add appends items and re-applies the store ordering, if any.
func (s *Store[T]) Add(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, items...)
	if s.less != nil {
		sort.SliceStable(s.items, func(i, j int) bool {
			return s.less(s.items[i], s.items[j])
		})
	}
}

// Len returns the number of stored items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Latest returns the first n items in store order. It always returns a
// non-nil slice; n larger than the store is truncated, n below zero is empty.
func (s *Store[T]) Latest(ctx context.Context, n int) ([]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.items) {
		n = len(s.items)
	}
	if n < 0 {
		n = 0
	}

	out := make([]any, 0, n)
	for _, item := range s.items[:n] {
		out = append(out, item)
	}
	return out, nil
}

// Get scans for items whose key matches pk. Duplicate keys are allowed in the
// store and surface as an ambiguous lookup.
func (s *Store[T]) Get(ctx context.Context, pk string) (modelreg.Lookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return modelreg.NotFound(), fmt.Errorf("memory: store has no key function")
	}

	var (
		match   T
		matches int
	)
	for _, item := range s.items {
		if s.key(item) == pk {
			match = item
			matches++
		}
	}

	switch matches {
	case 0:
		return modelreg.NotFound(), nil
	case 1:
		return modelreg.Found(match), nil
	}
	return modelreg.Ambiguous(), nil
}
