package contract

import "errors"

// Domain errors
var (
	ErrEmptyAccommodation = errors.New("contract accommodation cannot be empty")
	ErrEmptyType          = errors.New("contract type cannot be empty")
	ErrNotFound           = errors.New("contract not found")
	ErrTypeExists         = errors.New("contract type already exists")
)

// Contract is one stored contract record. The type catalogue is a separate
// flat list of names managed by Admin/Manager users.
type Contract struct {
	ID            string `json:"id"`
	Accommodation string `json:"accommodation"`
	Type          string `json:"contract_type"`
	Caption       string `json:"caption"`
	Attachment    string `json:"attachment,omitempty"`
}

// Validate checks if the Contract has valid data.
func (c *Contract) Validate() error {
	if c.Accommodation == "" {
		return ErrEmptyAccommodation
	}
	if c.Type == "" {
		return ErrEmptyType
	}
	return nil
}
