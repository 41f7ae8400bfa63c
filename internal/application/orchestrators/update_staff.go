package orchestrators

import (
	"context"
	"log/slog"

	staffDomain "quarters/internal/domain/staff"
)

// UpdateStaffInput carries the editable fields of an occupant record.
type UpdateStaffInput struct {
	Actor       Actor
	SAPID       string
	Name        string
	Designation string
	Department  string
	Nationality string
	Status      string
}

// UpdateStaffDeps holds dependencies for UpdateStaff.
type UpdateStaffDeps struct {
	Staff StaffStore
}

// ExecuteUpdateStaff edits an occupant record in place. The SAP ID and the
// slot coordinates are not editable here; moves go through shift, departures
// through checkout.
// PRE: a non-checked-out record holds the SAP ID; Status is a valid value
// POST: the record carries the new field values
func ExecuteUpdateStaff(ctx context.Context, input UpdateStaffInput, deps UpdateStaffDeps) error {
	err := deps.Staff.Mutate(ctx, func(records []staffDomain.Employee) ([]staffDomain.Employee, error) {
		for i := range records {
			if records[i].IsCheckedOut() || !records[i].MatchesSAPID(input.SAPID) {
				continue
			}
			if !input.Actor.CanModify(records[i].Accommodation) {
				return nil, ErrPermissionDenied
			}
			records[i].Name = input.Name
			records[i].Designation = input.Designation
			records[i].Department = input.Department
			records[i].Nationality = input.Nationality
			records[i].Status = input.Status
			if err := records[i].Validate(); err != nil {
				return nil, err
			}
			return records, nil
		}
		return nil, staffDomain.ErrNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("staff_event", "event", "staff_updated", "sap_id", staffDomain.NormalizeSAPID(input.SAPID),
		"actor", input.Actor.Username)
	return nil
}
