package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	staffDomain "quarters/internal/domain/staff"
)

// Accommodation bulk actions.
const (
	AccommodationRemove = "remove"
	AccommodationShift  = "shift"
)

// ErrUnknownAction is returned for an unrecognised bulk action.
var ErrUnknownAction = errors.New("unknown accommodation action")

// ManageAccommodationInput carries input for a bulk accommodation operation.
type ManageAccommodationInput struct {
	Actor         Actor
	Action        string // AccommodationRemove or AccommodationShift
	Accommodation string // the accommodation being removed or shifted from
	Target        string // shift only: the accommodation records move to
}

// ManageAccommodationDeps holds dependencies for ManageAccommodation.
type ManageAccommodationDeps struct {
	Staff StaffStore
}

// ExecuteManageAccommodation removes every record of an accommodation, or
// relabels them all to another accommodation.
// PRE: actor may modify the named accommodations
// POST: remove drops all matching records; shift rewrites their Accommodation
// field in one save
func ExecuteManageAccommodation(ctx context.Context, input ManageAccommodationInput, deps ManageAccommodationDeps) (int, error) {
	if !input.Actor.CanModify(input.Accommodation) {
		return 0, ErrPermissionDenied
	}
	if input.Action == AccommodationShift && !input.Actor.CanModify(input.Target) {
		return 0, ErrPermissionDenied
	}

	affected := 0
	err := deps.Staff.Mutate(ctx, func(records []staffDomain.Employee) ([]staffDomain.Employee, error) {
		switch input.Action {
		case AccommodationRemove:
			kept := records[:0]
			for _, r := range records {
				if r.Accommodation == input.Accommodation {
					affected++
					continue
				}
				kept = append(kept, r)
			}
			return kept, nil
		case AccommodationShift:
			for i := range records {
				if records[i].Accommodation == input.Accommodation {
					records[i].Accommodation = input.Target
					affected++
				}
			}
			return records, nil
		default:
			return nil, ErrUnknownAction
		}
	})
	if err != nil {
		return 0, err
	}

	slog.Info("staff_event", "event", "accommodation_managed", "action", input.Action,
		"accommodation", input.Accommodation, "target", input.Target,
		"affected", affected, "actor", input.Actor.Username)
	return affected, nil
}
