package storeroom

import "errors"

// CentralStore is the distinguished inventory location with distribution
// authority over the accommodations.
const CentralStore = "Central Store"

// Domain errors
var (
	ErrInsufficientStock   = errors.New("not enough stock for this operation")
	ErrNonPositiveQuantity = errors.New("quantity must be a positive number")
	ErrEmptyItemName       = errors.New("item name cannot be empty")
	ErrItemExists          = errors.New("master item already exists")
	ErrNotFound            = errors.New("stock line not found")
)

// InventoryItem is one stock balance line, keyed by (Accommodation, Item).
// Quantity never goes negative.
type InventoryItem struct {
	Accommodation string `json:"accommodation"`
	Item          string `json:"item_name"`
	Quantity      int    `json:"quantity"`
	Remarks       string `json:"remarks"`
}

// Matches reports whether this line is the balance for the given key.
// INVARIANT: InventoryItem fields are not mutated
func (it *InventoryItem) Matches(accommodation, item string) bool {
	return it.Accommodation == accommodation && it.Item == item
}

// Add increases the balance.
// PRE: qty > 0
// POST: Quantity increased by qty
func (it *InventoryItem) Add(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveQuantity
	}
	it.Quantity += qty
	return nil
}

// Remove decreases the balance, never below zero.
// PRE: qty > 0 and qty <= Quantity
// POST: Quantity decreased by qty
func (it *InventoryItem) Remove(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveQuantity
	}
	if qty > it.Quantity {
		return ErrInsufficientStock
	}
	it.Quantity -= qty
	return nil
}

// IssuedItem is an append-only historical record of a quantity handed from an
// accommodation's stock to a named employee.
type IssuedItem struct {
	ID            string `json:"id"`
	Accommodation string `json:"accommodation"`
	Item          string `json:"item_name"`
	Quantity      int    `json:"quantity"`
	SAPID         string `json:"sap_id"`
	EmpName       string `json:"emp_name"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	IssueDate     string `json:"issue_date"`
	Remarks       string `json:"remarks"`
}

// Prune removes zero-quantity lines from an inventory, preserving order.
func Prune(items []InventoryItem) []InventoryItem {
	kept := items[:0]
	for _, it := range items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	return kept
}
