package asset

import (
	"context"

	"quarters/internal/adapters/storage/jsondoc"
	domain "quarters/internal/domain/asset"
)

// JSONStore persists Asset ledger lines as one JSON document.
type JSONStore struct {
	col *jsondoc.Collection[domain.Asset]
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{col: jsondoc.New[domain.Asset](path)}
}

// All implements Store.
func (s *JSONStore) All(_ context.Context) ([]domain.Asset, error) {
	return s.col.Load()
}

// Replace implements Store.
func (s *JSONStore) Replace(_ context.Context, assets []domain.Asset) error {
	return s.col.Replace(assets)
}

// Mutate implements Store.
func (s *JSONStore) Mutate(_ context.Context, fn func([]domain.Asset) ([]domain.Asset, error)) error {
	return s.col.Mutate(fn)
}
