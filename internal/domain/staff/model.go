package staff

import (
	"errors"
	"strconv"
	"strings"
)

// Employee status constants. A slot record always carries one of these.
const (
	StatusActive     = "Active"
	StatusVacation   = "Vacation"
	StatusResigned   = "Resigned"
	StatusTerminated = "Terminated"
	StatusCheckedOut = "Checked-Out"
	StatusVacant     = "Vacant"
)

// DetachedAccommodation marks checked-out records that no longer occupy a slot.
const DetachedAccommodation = "N/A"

// ValidStatuses contains all valid employee status values.
var ValidStatuses = []string{StatusActive, StatusVacation, StatusResigned, StatusTerminated, StatusCheckedOut, StatusVacant}

// OccupantStatuses are the statuses counted as current occupants on the dashboard.
var OccupantStatuses = []string{StatusActive, StatusVacation, StatusResigned, StatusTerminated}

// Domain errors
var (
	ErrRoomNotVacant   = errors.New("selected room is not vacant")
	ErrTargetNotVacant = errors.New("target room is not vacant")
	ErrDuplicateSapID  = errors.New("staff with this SAP ID already exists")
	ErrNotFound        = errors.New("employee not found")
	ErrEmptySapID      = errors.New("SAP ID cannot be empty")
	ErrInvalidStatus   = errors.New("status must be one of: Active, Vacation, Resigned, Terminated, Checked-Out, Vacant")
)

// Employee is one room-slot record. A slot is either Vacant (identity fields
// cleared) or occupied by exactly one employee. Checked-Out records are
// historical and detached from any slot.
// JSON keys match the legacy staff document so existing data files load as-is.
type Employee struct {
	Accommodation string `json:"Accommodation"`
	Room          string `json:"Room"`
	SAPID         string `json:"SAP ID"`
	Name          string `json:"Emp Name"`
	Designation   string `json:"Designation"`
	Department    string `json:"Department"`
	Nationality   string `json:"Nationality"`
	Status        string `json:"Status"`
}

// NormalizeSAPID canonicalises a SAP ID for comparison. Legacy spreadsheet
// imports stored ids as floats ("5001.0"); those compare equal to "5001".
func NormalizeSAPID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// Validate checks if the Employee has valid data.
// PRE: Employee struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Employee) Validate() error {
	if !isValidStatus(e.Status) {
		return ErrInvalidStatus
	}
	if !e.IsVacant() && NormalizeSAPID(e.SAPID) == "" {
		return ErrEmptySapID
	}
	return nil
}

// IsVacant returns true if the slot has no occupant.
// INVARIANT: Employee fields are not mutated
func (e *Employee) IsVacant() bool {
	return e.Status == StatusVacant
}

// IsCheckedOut returns true if the record is historical.
// INVARIANT: Employee fields are not mutated
func (e *Employee) IsCheckedOut() bool {
	return e.Status == StatusCheckedOut
}

// IsOccupant returns true if the record currently occupies a slot.
// INVARIANT: Employee fields are not mutated
func (e *Employee) IsOccupant() bool {
	return !e.IsVacant() && !e.IsCheckedOut()
}

// MatchesSAPID reports whether the record's SAP ID equals the given id after
// normalisation. Vacant slots never match.
func (e *Employee) MatchesSAPID(sapID string) bool {
	mine := NormalizeSAPID(e.SAPID)
	return mine != "" && mine == NormalizeSAPID(sapID)
}

// Vacate clears the identity fields and returns the slot to Vacant.
// PRE: record occupies a slot
// POST: Accommodation and Room are preserved, all identity fields cleared
func (e *Employee) Vacate() {
	e.SAPID = ""
	e.Name = ""
	e.Designation = ""
	e.Department = ""
	e.Nationality = ""
	e.Status = StatusVacant
}

// CheckedOutCopy returns a detached historical copy of the record. The value
// receiver keeps it callable on any Employee expression.
// PRE: record occupies a slot
// POST: copy has Status=Checked-Out and Accommodation/Room set to N/A
func (e Employee) CheckedOutCopy() Employee {
	e.Status = StatusCheckedOut
	e.Accommodation = DetachedAccommodation
	e.Room = DetachedAccommodation
	return e
}

// Occupy fills a vacant slot with the given identity and activates it.
// PRE: slot is Vacant
// POST: identity fields set, Status=Active
func (e *Employee) Occupy(sapID, name, designation, department, nationality string) error {
	if !e.IsVacant() {
		return ErrRoomNotVacant
	}
	e.SAPID = NormalizeSAPID(sapID)
	e.Name = name
	e.Designation = designation
	e.Department = department
	e.Nationality = nationality
	e.Status = StatusActive
	return nil
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
