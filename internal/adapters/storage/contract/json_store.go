package contract

import (
	"context"

	"quarters/internal/adapters/storage/jsondoc"
	domain "quarters/internal/domain/contract"
)

// JSONStore persists Contract records as one JSON document.
type JSONStore struct {
	col *jsondoc.Collection[domain.Contract]
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{col: jsondoc.New[domain.Contract](path)}
}

// All implements Store.
func (s *JSONStore) All(_ context.Context) ([]domain.Contract, error) {
	return s.col.Load()
}

// Replace implements Store.
func (s *JSONStore) Replace(_ context.Context, contracts []domain.Contract) error {
	return s.col.Replace(contracts)
}

// Mutate implements Store.
func (s *JSONStore) Mutate(_ context.Context, fn func([]domain.Contract) ([]domain.Contract, error)) error {
	return s.col.Mutate(fn)
}

// JSONTypeStore persists the contract-type catalogue as one JSON document.
type JSONTypeStore struct {
	col *jsondoc.Collection[string]
}

// NewJSONTypeStore creates a type catalogue store backed by the given path.
func NewJSONTypeStore(path string) *JSONTypeStore {
	return &JSONTypeStore{col: jsondoc.New[string](path)}
}

// All implements TypeStore.
func (s *JSONTypeStore) All(_ context.Context) ([]string, error) {
	return s.col.Load()
}

// Mutate implements TypeStore.
func (s *JSONTypeStore) Mutate(_ context.Context, fn func([]string) ([]string, error)) error {
	return s.col.Mutate(fn)
}
