package orchestrators

import (
	"context"
	"log/slog"

	staffDomain "quarters/internal/domain/staff"
)

// AddStaffInput carries input for checking an employee into a room slot.
type AddStaffInput struct {
	Actor         Actor
	Accommodation string
	Room          string
	SAPID         string
	Name          string
	Designation   string
	Department    string
	Nationality   string
}

// AddStaffDeps holds dependencies for AddStaff.
type AddStaffDeps struct {
	Staff StaffStore
}

// ExecuteAddStaff checks an employee into a vacant room slot.
// PRE: the (Accommodation, Room) slot exists and is Vacant; the SAP ID is not
// held by any non-checked-out record
// POST: the slot is Active with the given identity; nothing else changed
func ExecuteAddStaff(ctx context.Context, input AddStaffInput, deps AddStaffDeps) error {
	if !input.Actor.CanModify(input.Accommodation) {
		return ErrPermissionDenied
	}
	sapID := staffDomain.NormalizeSAPID(input.SAPID)
	if sapID == "" {
		return staffDomain.ErrEmptySapID
	}

	err := deps.Staff.Mutate(ctx, func(records []staffDomain.Employee) ([]staffDomain.Employee, error) {
		slot := -1
		for i := range records {
			if records[i].Accommodation == input.Accommodation && records[i].Room == input.Room {
				if !records[i].IsVacant() {
					return nil, staffDomain.ErrRoomNotVacant
				}
				slot = i
			}
			if !records[i].IsCheckedOut() && records[i].MatchesSAPID(sapID) {
				return nil, staffDomain.ErrDuplicateSapID
			}
		}
		if slot < 0 {
			return nil, staffDomain.ErrRoomNotVacant
		}
		if err := records[slot].Occupy(sapID, input.Name, input.Designation, input.Department, input.Nationality); err != nil {
			return nil, err
		}
		return records, nil
	})
	if err != nil {
		return err
	}

	slog.Info("staff_event", "event", "staff_checked_in", "sap_id", sapID,
		"accommodation", input.Accommodation, "room", input.Room, "actor", input.Actor.Username)
	return nil
}
