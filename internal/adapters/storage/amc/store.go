package amc

import (
	"context"

	domain "quarters/internal/domain/amc"
)

// Store persists the AMC document.
type Store interface {
	All(ctx context.Context) ([]domain.AMC, error)
	Replace(ctx context.Context, records []domain.AMC) error
	Mutate(ctx context.Context, fn func(records []domain.AMC) ([]domain.AMC, error)) error
}
