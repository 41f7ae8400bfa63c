package asset

import (
	"context"

	domain "quarters/internal/domain/asset"
)

// Store persists the asset ledger document.
type Store interface {
	All(ctx context.Context) ([]domain.Asset, error)
	Replace(ctx context.Context, assets []domain.Asset) error
	Mutate(ctx context.Context, fn func(assets []domain.Asset) ([]domain.Asset, error)) error
}
