package orchestrators

import (
	"context"
	"errors"
	"testing"

	"quarters/internal/adapters/spreadsheet"
	staffDomain "quarters/internal/domain/staff"
)

func TestExecuteAddStaff(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		vacantSlot("Falcon Camp", "101"),
		occupiedSlot("Falcon Camp", "102", "5001", "John Smith"),
	}}

	err := ExecuteAddStaff(context.Background(), AddStaffInput{
		Actor:         adminActor,
		Accommodation: "Falcon Camp",
		Room:          "101",
		SAPID:         "5002.0",
		Name:          "Maria Cruz",
		Designation:   "Cook",
		Department:    "Kitchen",
		Nationality:   "Philippines",
	}, AddStaffDeps{Staff: store})
	if err != nil {
		t.Fatalf("ExecuteAddStaff: %v", err)
	}

	got := store.records[0]
	if got.SAPID != "5002" {
		t.Errorf("SAPID = %q, want normalised %q", got.SAPID, "5002")
	}
	if got.Status != staffDomain.StatusActive || got.Name != "Maria Cruz" {
		t.Errorf("slot not occupied: %+v", got)
	}
}

func TestExecuteAddStaffDuplicateSAPID(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		vacantSlot("Falcon Camp", "101"),
		occupiedSlot("Falcon Camp", "102", "5001", "John Smith"),
	}}

	err := ExecuteAddStaff(context.Background(), AddStaffInput{
		Actor: adminActor, Accommodation: "Falcon Camp", Room: "101",
		SAPID: "5001", Name: "Clone",
	}, AddStaffDeps{Staff: store})
	if !errors.Is(err, staffDomain.ErrDuplicateSapID) {
		t.Fatalf("err = %v, want ErrDuplicateSapID", err)
	}
	if !store.records[0].IsVacant() {
		t.Error("failed check-in must leave the slot vacant")
	}
	if store.saves != 0 {
		t.Errorf("failed check-in must not save, saves = %d", store.saves)
	}
}

func TestExecuteAddStaffCheckedOutIDReusable(t *testing.T) {
	// An id held only by a historical record may be reused.
	history := occupiedSlot("Falcon Camp", "102", "5001", "John Smith").CheckedOutCopy()
	store := &mockStaffStore{records: []staffDomain.Employee{
		vacantSlot("Falcon Camp", "101"),
		history,
	}}

	err := ExecuteAddStaff(context.Background(), AddStaffInput{
		Actor: adminActor, Accommodation: "Falcon Camp", Room: "101",
		SAPID: "5001", Name: "John Smith",
	}, AddStaffDeps{Staff: store})
	if err != nil {
		t.Fatalf("ExecuteAddStaff with checked-out id: %v", err)
	}
}

func TestExecuteAddStaffRoomNotVacant(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Falcon Camp", "101", "5001", "John Smith"),
	}}

	for _, room := range []string{"101", "999"} {
		err := ExecuteAddStaff(context.Background(), AddStaffInput{
			Actor: adminActor, Accommodation: "Falcon Camp", Room: room,
			SAPID: "5002", Name: "Maria Cruz",
		}, AddStaffDeps{Staff: store})
		if !errors.Is(err, staffDomain.ErrRoomNotVacant) {
			t.Errorf("room %q: err = %v, want ErrRoomNotVacant", room, err)
		}
	}
}

func TestExecuteAddStaffPermission(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{vacantSlot("Falcon Camp", "101")}}

	err := ExecuteAddStaff(context.Background(), AddStaffInput{
		Actor: scopedActor("Oasis Camp"), Accommodation: "Falcon Camp", Room: "101",
		SAPID: "5002", Name: "Maria Cruz",
	}, AddStaffDeps{Staff: store})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestExecuteCheckoutStaff(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Falcon Camp", "101", "5001", "John Smith"),
	}}

	err := ExecuteCheckoutStaff(context.Background(), CheckoutStaffInput{
		Actor: scopedActor("Falcon Camp"), SAPID: "5001",
	}, CheckoutStaffDeps{Staff: store})
	if err != nil {
		t.Fatalf("ExecuteCheckoutStaff: %v", err)
	}

	if len(store.records) != 2 {
		t.Fatalf("len(records) = %d, want slot + history", len(store.records))
	}
	slot := store.records[0]
	if !slot.IsVacant() || slot.Room != "101" {
		t.Errorf("slot should be vacant in place: %+v", slot)
	}
	history := store.records[1]
	if !history.IsCheckedOut() || history.SAPID != "5001" {
		t.Errorf("history record wrong: %+v", history)
	}
	if history.Accommodation != staffDomain.DetachedAccommodation {
		t.Errorf("history must be detached, got %q", history.Accommodation)
	}
	if store.saves != 1 {
		t.Errorf("vacate and history append must land in one save, saves = %d", store.saves)
	}
}

func TestExecuteCheckoutStaffScopeDenied(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Falcon Camp", "101", "5001", "John Smith"),
	}}

	err := ExecuteCheckoutStaff(context.Background(), CheckoutStaffInput{
		Actor: scopedActor("Oasis Camp"), SAPID: "5001",
	}, CheckoutStaffDeps{Staff: store})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if len(store.records) != 1 || !store.records[0].IsOccupant() {
		t.Error("denied checkout must not change the document")
	}
}

func TestExecuteCheckoutStaffNotFound(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{vacantSlot("Falcon Camp", "101")}}

	err := ExecuteCheckoutStaff(context.Background(), CheckoutStaffInput{
		Actor: adminActor, SAPID: "9999",
	}, CheckoutStaffDeps{Staff: store})
	if !errors.Is(err, staffDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExecuteShiftStaff(t *testing.T) {
	// A non-Active source must not leak its status into the new slot.
	source := occupiedSlot("Falcon Camp", "101", "5001", "John Smith")
	source.Status = staffDomain.StatusVacation
	store := &mockStaffStore{records: []staffDomain.Employee{
		source,
		vacantSlot("Oasis Camp", "201"),
	}}

	err := ExecuteShiftStaff(context.Background(), ShiftStaffInput{
		Actor: adminActor, SAPID: "5001",
		NewAccommodation: "Oasis Camp", NewRoom: "201",
	}, ShiftStaffDeps{Staff: store})
	if err != nil {
		t.Fatalf("ExecuteShiftStaff: %v", err)
	}

	if !store.records[0].IsVacant() {
		t.Errorf("source slot should be vacant: %+v", store.records[0])
	}
	target := store.records[1]
	if target.SAPID != "5001" || target.Name != "John Smith" {
		t.Errorf("identity not carried to target: %+v", target)
	}
	if target.Status != staffDomain.StatusActive {
		t.Errorf("shift must activate the target slot, got %q", target.Status)
	}
	if store.saves != 1 {
		t.Errorf("both slots must change in one save, saves = %d", store.saves)
	}
}

func TestExecuteShiftStaffTargetNotVacant(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Falcon Camp", "101", "5001", "John Smith"),
		occupiedSlot("Oasis Camp", "201", "5002", "Maria Cruz"),
	}}

	err := ExecuteShiftStaff(context.Background(), ShiftStaffInput{
		Actor: adminActor, SAPID: "5001",
		NewAccommodation: "Oasis Camp", NewRoom: "201",
	}, ShiftStaffDeps{Staff: store})
	if !errors.Is(err, staffDomain.ErrTargetNotVacant) {
		t.Fatalf("err = %v, want ErrTargetNotVacant", err)
	}
	if store.records[0].SAPID != "5001" || store.records[1].SAPID != "5002" {
		t.Error("failed shift must not change either slot")
	}
}

func TestExecuteShiftStaffNeedsBothScopes(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Falcon Camp", "101", "5001", "John Smith"),
		vacantSlot("Oasis Camp", "201"),
	}}

	// Allowed at the source only.
	err := ExecuteShiftStaff(context.Background(), ShiftStaffInput{
		Actor: scopedActor("Falcon Camp"), SAPID: "5001",
		NewAccommodation: "Oasis Camp", NewRoom: "201",
	}, ShiftStaffDeps{Staff: store})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func staffTable(rows ...[]string) spreadsheet.Table {
	return spreadsheet.Table{Headers: StaffColumns, Rows: rows}
}

func TestExecuteImportStaffReplace(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Old Camp", "1", "1111", "Old Guy"),
	}}

	result, err := ExecuteImportStaff(context.Background(), ImportStaffInput{
		Actor: adminActor,
		Mode:  ImportReplace,
		Table: staffTable(
			[]string{"Falcon Camp", "101", "5001.0", "John Smith", "Cook", "Active", "Kitchen", "India"},
			[]string{"Falcon Camp", "102", "", "", "", "Vacant", "", ""},
			[]string{"Falcon Camp", "103", "", "No ID", "", "Active", "", ""},
			[]string{"Falcon Camp", "104", "5001", "Dup In File", "", "Active", "", ""},
		),
	}, ImportStaffDeps{Staff: store})
	if err != nil {
		t.Fatalf("ExecuteImportStaff: %v", err)
	}

	if result.Imported != 2 || result.Dropped != 2 {
		t.Errorf("result = %+v, want 2 imported, 2 dropped", result)
	}
	if len(store.records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(store.records))
	}
	if store.records[0].SAPID != "5001" {
		t.Errorf("SAP ID should be normalised, got %q", store.records[0].SAPID)
	}
	if !store.records[1].IsVacant() {
		t.Error("vacant row must be kept as a slot")
	}
}

func TestExecuteImportStaffMergeSkipsExisting(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Falcon Camp", "101", "5001", "John Smith"),
	}}

	result, err := ExecuteImportStaff(context.Background(), ImportStaffInput{
		Actor: adminActor,
		Mode:  ImportMerge,
		Table: staffTable(
			[]string{"Oasis Camp", "201", "5001", "John Again", "", "Active", "", ""},
			[]string{"Oasis Camp", "202", "5002", "Maria Cruz", "", "Active", "", ""},
		),
	}, ImportStaffDeps{Staff: store})
	if err != nil {
		t.Fatalf("ExecuteImportStaff: %v", err)
	}

	if result.Imported != 1 || result.Skipped != 1 {
		t.Errorf("result = %+v, want 1 imported, 1 skipped", result)
	}
	if len(store.records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(store.records))
	}
}

func TestExecuteImportStaffMissingColumn(t *testing.T) {
	store := &mockStaffStore{records: []staffDomain.Employee{
		occupiedSlot("Falcon Camp", "101", "5001", "John Smith"),
	}}

	_, err := ExecuteImportStaff(context.Background(), ImportStaffInput{
		Actor: adminActor,
		Mode:  ImportReplace,
		Table: spreadsheet.Table{
			Headers: []string{"Accommodation", "Room"},
			Rows:    [][]string{{"Falcon Camp", "101"}},
		},
	}, ImportStaffDeps{Staff: store})
	if err == nil {
		t.Fatal("expected missing-column error")
	}
	if store.saves != 0 {
		t.Error("validation failure must leave the document untouched")
	}
}

func TestExecuteImportStaffRequiresPrivilegedRole(t *testing.T) {
	store := &mockStaffStore{}
	_, err := ExecuteImportStaff(context.Background(), ImportStaffInput{
		Actor: scopedActor("Falcon Camp"),
		Mode:  ImportReplace,
		Table: staffTable(),
	}, ImportStaffDeps{Staff: store})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}
