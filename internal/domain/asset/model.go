package asset

import "errors"

// Asset status constants. Each (accommodation, name, status) tuple owns one
// quantity balance line.
const (
	StatusAvailable = "Available"
	StatusScrap     = "Scrap"
)

// Domain errors
var (
	ErrInsufficientQuantity = errors.New("not enough quantity for this operation")
	ErrNonPositiveQuantity  = errors.New("quantity must be a positive number")
	ErrEmptyName            = errors.New("asset name cannot be empty")
	ErrNotFound             = errors.New("asset not found")
)

// Asset is one balance line in the asset ledger, keyed by
// (Accommodation, Name, Status). Quantity never goes negative; lines that
// reach zero are pruned from the ledger.
type Asset struct {
	ID            string `json:"id"`
	Accommodation string `json:"accommodation"`
	Name          string `json:"asset_name"`
	Quantity      int    `json:"quantity"`
	ReceivedFrom  string `json:"received_from,omitempty"`
	Remarks       string `json:"remarks"`
	Status        string `json:"status"`

	// Scrap provenance, recorded when quantity is first moved to a Scrap line.
	SAPID       string `json:"sap_id,omitempty"`
	EmpName     string `json:"emp_name,omitempty"`
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
	ScrapDate   string `json:"scrap_date,omitempty"`
}

// Matches reports whether this line is the balance for the given key tuple.
// INVARIANT: Asset fields are not mutated
func (a *Asset) Matches(accommodation, name, status string) bool {
	return a.Accommodation == accommodation && a.Name == name && a.Status == status
}

// Add increases the balance.
// PRE: qty > 0
// POST: Quantity increased by qty
func (a *Asset) Add(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveQuantity
	}
	a.Quantity += qty
	return nil
}

// Remove decreases the balance, never below zero.
// PRE: qty > 0 and qty <= Quantity
// POST: Quantity decreased by qty
func (a *Asset) Remove(qty int) error {
	if qty <= 0 {
		return ErrNonPositiveQuantity
	}
	if qty > a.Quantity {
		return ErrInsufficientQuantity
	}
	a.Quantity -= qty
	return nil
}

// Validate checks if the Asset has valid data.
func (a *Asset) Validate() error {
	if a.Name == "" {
		return ErrEmptyName
	}
	if a.Quantity < 0 {
		return ErrInsufficientQuantity
	}
	if a.Status != StatusAvailable && a.Status != StatusScrap {
		return errors.New("asset status must be 'Available' or 'Scrap'")
	}
	return nil
}

// Prune removes zero-quantity lines from a ledger, preserving order.
func Prune(assets []Asset) []Asset {
	kept := assets[:0]
	for _, a := range assets {
		if a.Quantity > 0 {
			kept = append(kept, a)
		}
	}
	return kept
}
