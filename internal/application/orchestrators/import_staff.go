package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"quarters/internal/adapters/spreadsheet"
	staffDomain "quarters/internal/domain/staff"
	userDomain "quarters/internal/domain/user"
)

// ImportMode selects how an uploaded staff workbook is applied.
type ImportMode int

const (
	// ImportReplace discards the existing staff document.
	ImportReplace ImportMode = iota
	// ImportMerge appends rows whose SAP ID is not already present.
	ImportMerge
)

// StaffColumns are the headers a staff workbook must carry.
var StaffColumns = []string{
	"Accommodation", "Room", "SAP ID", "Emp Name",
	"Designation", "Status", "Department", "Nationality",
}

// ImportStaffInput carries a parsed workbook and the apply mode.
type ImportStaffInput struct {
	Actor Actor
	Table spreadsheet.Table
	Mode  ImportMode
}

// ImportStaffDeps holds dependencies for ImportStaff.
type ImportStaffDeps struct {
	Staff StaffStore
}

// ImportStaffResult reports what the import did.
type ImportStaffResult struct {
	Imported int // rows written
	Dropped  int // rows without a SAP ID, or duplicated within the file
	Skipped  int // merge mode: rows whose SAP ID already existed
}

// ExecuteImportStaff applies an uploaded staff workbook.
// PRE: the table carries every required column
// POST: replace mode swaps the whole document; merge mode appends new SAP IDs
// only; on any validation error the stored document is untouched
func ExecuteImportStaff(ctx context.Context, input ImportStaffInput, deps ImportStaffDeps) (ImportStaffResult, error) {
	if !userCanImport(input.Actor) {
		return ImportStaffResult{}, ErrPermissionDenied
	}
	if missing := input.Table.MissingColumns(StaffColumns...); len(missing) > 0 {
		return ImportStaffResult{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var result ImportStaffResult
	incoming := make([]staffDomain.Employee, 0, len(input.Table.Rows))
	seen := make(map[string]bool)
	for _, row := range input.Table.Rows {
		e := staffDomain.Employee{
			Accommodation: input.Table.Cell(row, "Accommodation"),
			Room:          input.Table.Cell(row, "Room"),
			SAPID:         staffDomain.NormalizeSAPID(input.Table.Cell(row, "SAP ID")),
			Name:          input.Table.Cell(row, "Emp Name"),
			Designation:   input.Table.Cell(row, "Designation"),
			Department:    input.Table.Cell(row, "Department"),
			Nationality:   input.Table.Cell(row, "Nationality"),
			Status:        input.Table.Cell(row, "Status"),
		}
		// Vacant slot rows carry no SAP ID and are kept as slots.
		if e.IsVacant() {
			incoming = append(incoming, e)
			continue
		}
		if e.SAPID == "" || seen[e.SAPID] {
			result.Dropped++
			continue
		}
		seen[e.SAPID] = true
		incoming = append(incoming, e)
	}

	err := deps.Staff.Mutate(ctx, func(records []staffDomain.Employee) ([]staffDomain.Employee, error) {
		if input.Mode == ImportReplace {
			result.Imported = len(incoming)
			return incoming, nil
		}
		existing := make(map[string]bool)
		for i := range records {
			if !records[i].IsCheckedOut() {
				if id := staffDomain.NormalizeSAPID(records[i].SAPID); id != "" {
					existing[id] = true
				}
			}
		}
		for _, e := range incoming {
			if !e.IsVacant() && existing[e.SAPID] {
				result.Skipped++
				continue
			}
			records = append(records, e)
			result.Imported++
		}
		return records, nil
	})
	if err != nil {
		return ImportStaffResult{}, err
	}

	slog.Info("staff_event", "event", "staff_imported", "mode", input.Mode,
		"imported", result.Imported, "dropped", result.Dropped, "skipped", result.Skipped,
		"actor", input.Actor.Username)
	return result, nil
}

// userCanImport limits document-level imports to privileged roles.
func userCanImport(a Actor) bool {
	return userDomain.Privileged(a.Role)
}
