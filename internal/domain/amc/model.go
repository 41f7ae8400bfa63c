package amc

import "errors"

// Domain errors
var (
	ErrEmptyAccommodation = errors.New("AMC accommodation cannot be empty")
	ErrEmptyVendor        = errors.New("AMC vendor cannot be empty")
	ErrNotFound           = errors.New("AMC record not found")
)

// AMC is one annual-maintenance-contract service record. Attachment holds the
// stored filename of an uploaded document, empty when none was provided.
type AMC struct {
	ID            string `json:"id"`
	Accommodation string `json:"accommodation"`
	Vendor        string `json:"vendor"`
	ServiceDate   string `json:"service_date"`
	ExpiryDate    string `json:"expiry_date"`
	Type          string `json:"type"`
	Remarks       string `json:"remarks"`
	Attachment    string `json:"attachment,omitempty"`
}

// Validate checks if the AMC has valid data.
// PRE: AMC struct is populated
// POST: Returns nil if valid, error otherwise
func (a *AMC) Validate() error {
	if a.Accommodation == "" {
		return ErrEmptyAccommodation
	}
	if a.Vendor == "" {
		return ErrEmptyVendor
	}
	return nil
}
