package staff

import (
	"context"

	"quarters/internal/adapters/storage/jsondoc"
	domain "quarters/internal/domain/staff"
)

// JSONStore persists Employee records as one JSON document.
type JSONStore struct {
	col *jsondoc.Collection[domain.Employee]
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{col: jsondoc.New[domain.Employee](path)}
}

// All implements Store.
func (s *JSONStore) All(_ context.Context) ([]domain.Employee, error) {
	return s.col.Load()
}

// Replace implements Store.
func (s *JSONStore) Replace(_ context.Context, employees []domain.Employee) error {
	return s.col.Replace(employees)
}

// Mutate implements Store.
func (s *JSONStore) Mutate(_ context.Context, fn func([]domain.Employee) ([]domain.Employee, error)) error {
	return s.col.Mutate(fn)
}
