package maintenance

import "errors"

// Issue status constants
const (
	StatusOpen      = "Open"
	StatusInProcess = "In-Process"
	StatusClosed    = "Closed"
)

// ValidStatuses contains all valid issue status values.
var ValidStatuses = []string{StatusOpen, StatusInProcess, StatusClosed}

// Domain errors
var (
	ErrEmptyAccommodation = errors.New("issue accommodation cannot be empty")
	ErrInvalidStatus      = errors.New("issue status must be one of: Open, In-Process, Closed")
	ErrNotFound           = errors.New("maintenance issue not found")
)

// Issue is one maintenance ticket. Dates are stored as YYYY-MM-DD strings.
type Issue struct {
	ID            string `json:"id"`
	Accommodation string `json:"accommodation"`
	Block         string `json:"block"`
	Section       string `json:"section"`
	ReportDate    string `json:"report_date"`
	Details       string `json:"details"`
	Status        string `json:"status"`
	ClosedDate    string `json:"closed_date"`
	Concern       string `json:"concern"`
	ConcernOther  string `json:"concern_other"`
	Risk          string `json:"risk"`
	Remarks       string `json:"remarks"`
}

// Validate checks if the Issue has valid data.
// PRE: Issue struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Issue) Validate() error {
	if i.Accommodation == "" {
		return ErrEmptyAccommodation
	}
	if !isValidStatus(i.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsClosed returns true if the issue has been resolved.
// INVARIANT: Issue fields are not mutated
func (i *Issue) IsClosed() bool {
	return i.Status == StatusClosed
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
