package user

import (
	"context"

	"quarters/internal/adapters/storage/jsondoc"
	domain "quarters/internal/domain/user"
)

// JSONStore persists User accounts as one JSON document.
type JSONStore struct {
	col *jsondoc.Collection[domain.User]
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{col: jsondoc.New[domain.User](path)}
}

// All implements Store.
func (s *JSONStore) All(_ context.Context) ([]domain.User, error) {
	return s.col.Load()
}

// GetByUsername implements Store.
func (s *JSONStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	users, err := s.col.Load()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

// Replace implements Store.
func (s *JSONStore) Replace(_ context.Context, users []domain.User) error {
	return s.col.Replace(users)
}

// Mutate implements Store.
func (s *JSONStore) Mutate(_ context.Context, fn func([]domain.User) ([]domain.User, error)) error {
	return s.col.Mutate(fn)
}
