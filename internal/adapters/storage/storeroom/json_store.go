package storeroom

import (
	"context"

	"quarters/internal/adapters/storage/jsondoc"
	domain "quarters/internal/domain/storeroom"
)

// JSONInventoryStore persists stock balance lines as one JSON document.
type JSONInventoryStore struct {
	col *jsondoc.Collection[domain.InventoryItem]
}

// NewJSONInventoryStore creates an inventory store backed by the given path.
func NewJSONInventoryStore(path string) *JSONInventoryStore {
	return &JSONInventoryStore{col: jsondoc.New[domain.InventoryItem](path)}
}

// All implements InventoryStore.
func (s *JSONInventoryStore) All(_ context.Context) ([]domain.InventoryItem, error) {
	return s.col.Load()
}

// Replace implements InventoryStore.
func (s *JSONInventoryStore) Replace(_ context.Context, items []domain.InventoryItem) error {
	return s.col.Replace(items)
}

// Mutate implements InventoryStore.
func (s *JSONInventoryStore) Mutate(_ context.Context, fn func([]domain.InventoryItem) ([]domain.InventoryItem, error)) error {
	return s.col.Mutate(fn)
}

// JSONIssuedStore persists issued-item history as one JSON document.
type JSONIssuedStore struct {
	col *jsondoc.Collection[domain.IssuedItem]
}

// NewJSONIssuedStore creates an issued-history store backed by the given path.
func NewJSONIssuedStore(path string) *JSONIssuedStore {
	return &JSONIssuedStore{col: jsondoc.New[domain.IssuedItem](path)}
}

// All implements IssuedStore.
func (s *JSONIssuedStore) All(_ context.Context) ([]domain.IssuedItem, error) {
	return s.col.Load()
}

// Append implements IssuedStore. History records are never updated or removed.
func (s *JSONIssuedStore) Append(_ context.Context, item domain.IssuedItem) error {
	return s.col.Mutate(func(items []domain.IssuedItem) ([]domain.IssuedItem, error) {
		return append(items, item), nil
	})
}

// JSONItemStore persists the master item catalogue as one JSON document.
type JSONItemStore struct {
	col *jsondoc.Collection[string]
}

// NewJSONItemStore creates a catalogue store backed by the given path.
func NewJSONItemStore(path string) *JSONItemStore {
	return &JSONItemStore{col: jsondoc.New[string](path)}
}

// All implements ItemStore.
func (s *JSONItemStore) All(_ context.Context) ([]string, error) {
	return s.col.Load()
}

// Mutate implements ItemStore.
func (s *JSONItemStore) Mutate(_ context.Context, fn func([]string) ([]string, error)) error {
	return s.col.Mutate(fn)
}
