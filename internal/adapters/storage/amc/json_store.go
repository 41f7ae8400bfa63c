package amc

import (
	"context"

	"quarters/internal/adapters/storage/jsondoc"
	domain "quarters/internal/domain/amc"
)

// JSONStore persists AMC records as one JSON document.
type JSONStore struct {
	col *jsondoc.Collection[domain.AMC]
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{col: jsondoc.New[domain.AMC](path)}
}

// All implements Store.
func (s *JSONStore) All(_ context.Context) ([]domain.AMC, error) {
	return s.col.Load()
}

// Replace implements Store.
func (s *JSONStore) Replace(_ context.Context, records []domain.AMC) error {
	return s.col.Replace(records)
}

// Mutate implements Store.
func (s *JSONStore) Mutate(_ context.Context, fn func([]domain.AMC) ([]domain.AMC, error)) error {
	return s.col.Mutate(fn)
}
