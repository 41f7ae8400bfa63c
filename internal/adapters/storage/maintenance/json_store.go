package maintenance

import (
	"context"

	"quarters/internal/adapters/storage/jsondoc"
	domain "quarters/internal/domain/maintenance"
)

// JSONStore persists Issue records as one JSON document.
type JSONStore struct {
	col *jsondoc.Collection[domain.Issue]
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{col: jsondoc.New[domain.Issue](path)}
}

// All implements Store.
func (s *JSONStore) All(_ context.Context) ([]domain.Issue, error) {
	return s.col.Load()
}

// Replace implements Store.
func (s *JSONStore) Replace(_ context.Context, issues []domain.Issue) error {
	return s.col.Replace(issues)
}

// Mutate implements Store.
func (s *JSONStore) Mutate(_ context.Context, fn func([]domain.Issue) ([]domain.Issue, error)) error {
	return s.col.Mutate(fn)
}
