package storeroom

import (
	"context"

	domain "quarters/internal/domain/storeroom"
)

// InventoryStore persists the stock balance document.
type InventoryStore interface {
	All(ctx context.Context) ([]domain.InventoryItem, error)
	Replace(ctx context.Context, items []domain.InventoryItem) error
	Mutate(ctx context.Context, fn func(items []domain.InventoryItem) ([]domain.InventoryItem, error)) error
}

// IssuedStore persists the append-only issued-item history.
type IssuedStore interface {
	All(ctx context.Context) ([]domain.IssuedItem, error)
	Append(ctx context.Context, item domain.IssuedItem) error
}

// ItemStore persists the master item catalogue, a flat sorted list of names.
type ItemStore interface {
	All(ctx context.Context) ([]string, error)
	Mutate(ctx context.Context, fn func(items []string) ([]string, error)) error
}
