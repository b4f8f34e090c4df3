// Package store implements the persistence core: existence validators, the
// list query builder, variable-shape inserts, and the mutation operations.
// It treats the database as an opaque parameterized-query executor and never
// owns schema.
package store

import (
	"newsboard/internal/dbexec"
)

// Store runs entity operations against a query executor.
type Store struct {
	exec dbexec.Executor

	// collation names a natural-sort (numeric-aware) collation applied to
	// textual sort keys, keeping multi-key text ordering human-expected.
	// Empty means the column default.
	collation string
}

// Option configures a Store.
type Option func(*Store)

// WithSortCollation sets the collation applied to textual sort keys.
func WithSortCollation(name string) Option {
	return func(s *Store) { s.collation = name }
}

// New creates a Store over exec.
func New(exec dbexec.Executor, opts ...Option) *Store {
	s := &Store{exec: exec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
