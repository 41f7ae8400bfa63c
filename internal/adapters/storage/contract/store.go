package contract

import (
	"context"

	domain "quarters/internal/domain/contract"
)

// Store persists the contracts document.
type Store interface {
	All(ctx context.Context) ([]domain.Contract, error)
	Replace(ctx context.Context, contracts []domain.Contract) error
	Mutate(ctx context.Context, fn func(contracts []domain.Contract) ([]domain.Contract, error)) error
}

// TypeStore persists the contract-type catalogue, a flat sorted list of names.
type TypeStore interface {
	All(ctx context.Context) ([]string, error)
	Mutate(ctx context.Context, fn func(types []string) ([]string, error)) error
}
