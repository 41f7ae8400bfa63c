package orchestrators

import (
	"context"
	"log/slog"

	staffDomain "quarters/internal/domain/staff"
)

// CheckoutStaffInput carries input for checking an employee out.
type CheckoutStaffInput struct {
	Actor Actor
	SAPID string
}

// CheckoutStaffDeps holds dependencies for CheckoutStaff.
type CheckoutStaffDeps struct {
	Staff StaffStore
}

// ExecuteCheckoutStaff checks an employee out of their room slot.
// PRE: a non-checked-out record holds the SAP ID
// POST: the slot is Vacant with identity cleared; exactly one detached
// Checked-Out record is appended; both changes land in one save
func ExecuteCheckoutStaff(ctx context.Context, input CheckoutStaffInput, deps CheckoutStaffDeps) error {
	var accommodation, room string

	err := deps.Staff.Mutate(ctx, func(records []staffDomain.Employee) ([]staffDomain.Employee, error) {
		for i := range records {
			if records[i].IsCheckedOut() || !records[i].MatchesSAPID(input.SAPID) {
				continue
			}
			if !input.Actor.CanModify(records[i].Accommodation) {
				return nil, ErrPermissionDenied
			}
			accommodation = records[i].Accommodation
			room = records[i].Room
			history := records[i].CheckedOutCopy()
			records[i].Vacate()
			return append(records, history), nil
		}
		return nil, staffDomain.ErrNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("staff_event", "event", "staff_checked_out", "sap_id", staffDomain.NormalizeSAPID(input.SAPID),
		"accommodation", accommodation, "room", room, "actor", input.Actor.Username)
	return nil
}
