package orchestrators

import (
	"context"
	"log/slog"

	staffDomain "quarters/internal/domain/staff"
)

// ShiftStaffInput carries input for moving an employee to another room.
type ShiftStaffInput struct {
	Actor            Actor
	SAPID            string
	NewAccommodation string
	NewRoom          string
}

// ShiftStaffDeps holds dependencies for ShiftStaff.
type ShiftStaffDeps struct {
	Staff StaffStore
}

// ExecuteShiftStaff moves an occupant to a vacant slot elsewhere.
// PRE: a non-checked-out record holds the SAP ID; the target slot exists and
// is Vacant
// POST: the target slot carries the occupant's identity with Status=Active,
// the source slot is Vacant; both records change in one save
func ExecuteShiftStaff(ctx context.Context, input ShiftStaffInput, deps ShiftStaffDeps) error {
	var fromAccommodation, fromRoom string

	err := deps.Staff.Mutate(ctx, func(records []staffDomain.Employee) ([]staffDomain.Employee, error) {
		source := -1
		target := -1
		for i := range records {
			if source < 0 && !records[i].IsCheckedOut() && records[i].MatchesSAPID(input.SAPID) {
				source = i
			}
			if records[i].Accommodation == input.NewAccommodation && records[i].Room == input.NewRoom {
				if !records[i].IsVacant() {
					return nil, staffDomain.ErrTargetNotVacant
				}
				target = i
			}
		}
		if source < 0 {
			return nil, staffDomain.ErrNotFound
		}
		if target < 0 {
			return nil, staffDomain.ErrTargetNotVacant
		}
		if !input.Actor.CanModify(records[source].Accommodation) || !input.Actor.CanModify(input.NewAccommodation) {
			return nil, ErrPermissionDenied
		}

		fromAccommodation = records[source].Accommodation
		fromRoom = records[source].Room

		// Carry the identity across; the move itself reactivates the occupant.
		src := records[source]
		records[target].SAPID = src.SAPID
		records[target].Name = src.Name
		records[target].Designation = src.Designation
		records[target].Department = src.Department
		records[target].Nationality = src.Nationality
		records[target].Status = staffDomain.StatusActive
		records[source].Vacate()
		return records, nil
	})
	if err != nil {
		return err
	}

	slog.Info("staff_event", "event", "staff_shifted", "sap_id", staffDomain.NormalizeSAPID(input.SAPID),
		"from_accommodation", fromAccommodation, "from_room", fromRoom,
		"to_accommodation", input.NewAccommodation, "to_room", input.NewRoom, "actor", input.Actor.Username)
	return nil
}
