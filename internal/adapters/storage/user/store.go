package user

import (
	"context"

	domain "quarters/internal/domain/user"
)

// Store persists the user account document.
type Store interface {
	All(ctx context.Context) ([]domain.User, error)
	// GetByUsername returns the account or domain user.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	// Replace overwrites the full account list.
	Replace(ctx context.Context, users []domain.User) error
	Mutate(ctx context.Context, fn func(users []domain.User) ([]domain.User, error)) error
}
