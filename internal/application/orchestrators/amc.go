package orchestrators

import (
	"context"
	"log/slog"

	amcDomain "quarters/internal/domain/amc"
)

// AddAMCInput carries input for recording an AMC service contract. Attachment
// is the stored filename of an already-saved upload, empty when none.
type AddAMCInput struct {
	Actor         Actor
	Accommodation string
	Vendor        string
	ServiceDate   string
	ExpiryDate    string
	Type          string
	Remarks       string
	Attachment    string
}

// AddAMCDeps holds dependencies for AddAMC.
type AddAMCDeps struct {
	AMCs       AMCStore
	GenerateID func() string
}

// ExecuteAddAMC records a new AMC entry.
// PRE: Accommodation permitted for the actor; Vendor is non-empty
// POST: one AMC appended with a generated id and normalized dates
func ExecuteAddAMC(ctx context.Context, input AddAMCInput, deps AddAMCDeps) (amcDomain.AMC, error) {
	if !input.Actor.CanModify(input.Accommodation) {
		return amcDomain.AMC{}, ErrPermissionDenied
	}

	record := amcDomain.AMC{
		ID:            deps.GenerateID(),
		Accommodation: input.Accommodation,
		Vendor:        input.Vendor,
		ServiceDate:   NormalizeDate(input.ServiceDate),
		ExpiryDate:    NormalizeDate(input.ExpiryDate),
		Type:          input.Type,
		Remarks:       input.Remarks,
		Attachment:    input.Attachment,
	}
	if err := record.Validate(); err != nil {
		return amcDomain.AMC{}, err
	}

	err := deps.AMCs.Mutate(ctx, func(records []amcDomain.AMC) ([]amcDomain.AMC, error) {
		return append(records, record), nil
	})
	if err != nil {
		return amcDomain.AMC{}, err
	}

	slog.Info("amc_event", "event", "amc_added", "amc_id", record.ID,
		"accommodation", record.Accommodation, "vendor", record.Vendor, "actor", input.Actor.Username)
	return record, nil
}
