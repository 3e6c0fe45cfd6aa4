// Package gormstore adapts a gorm-managed table to the query capabilities the
// template tags consume. The primary key travels as its literal string form
// and is coerced by the database; a key the column type cannot interpret
// fails the lookup loudly.
package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/goliatone/go-contenttags/pkg/modelreg"
)

// Option configures a Store before construction.
type Option func(*config)

type config struct {
	order    string
	pkColumn string
}

// WithOrder sets the default ordering clause used by Latest, e.g.
// "created_at DESC". Without it the database decides the order.
func WithOrder(order string) Option {
	return func(cfg *config) {
		cfg.order = order
	}
}

// WithPrimaryKeyColumn overrides the column Get matches against. Defaults to
// "id".
func WithPrimaryKeyColumn(column string) Option {
	return func(cfg *config) {
		if column != "" {
			cfg.pkColumn = column
		}
	}
}

// Store answers the Lister and Fetcher capabilities over the table gorm maps
// the model type T to.
type Store[T any] struct {
	db  *gorm.DB
	cfg config
}

var (
	_ modelreg.Lister  = (*Store[struct{}])(nil)
	_ modelreg.Fetcher = (*Store[struct{}])(nil)
)

// New creates a store over db.
func New[T any](db *gorm.DB, opts ...Option) (*Store[T], error) {
	if db == nil {
		return nil, fmt.Errorf("gormstore: db is required")
	}

	cfg := config{pkColumn: "id"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Store[T]{db: db, cfg: cfg}, nil
}

// Latest returns the first n rows in the store's default ordering.
func (s *Store[T]) Latest(ctx context.Context, n int) ([]any, error) {
	if n <= 0 {
		return []any{}, nil
	}

	q := s.db.WithContext(ctx)
	if s.cfg.order != "" {
		q = q.Order(s.cfg.order)
	}

	var rows []T
	if err := q.Limit(n).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("gormstore: list: %w", err)
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}
	return out, nil
}

// Get fetches at most two rows by primary-key column and maps the row count
// onto the lookup outcome. Fetching two keeps an integrity violation (several
// rows behind one key) detectable without scanning the table.
func (s *Store[T]) Get(ctx context.Context, pk string) (modelreg.Lookup, error) {
	var rows []T
	err := s.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", s.cfg.pkColumn), pk).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return modelreg.NotFound(), fmt.Errorf("gormstore: get %s=%q: %w", s.cfg.pkColumn, pk, err)
	}

	switch len(rows) {
	case 0:
		return modelreg.NotFound(), nil
	case 1:
		return modelreg.Found(rows[0]), nil
	}
	return modelreg.Ambiguous(), nil
}
