package staff

import "testing"

func TestNormalizeSAPID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain id", "5001", "5001"},
		{"legacy float import", "5001.0", "5001"},
		{"surrounding whitespace", "  5001  ", "5001"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"non-numeric id kept as-is", "EMP-17", "EMP-17"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSAPID(tt.raw); got != tt.want {
				t.Errorf("NormalizeSAPID(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMatchesSAPID(t *testing.T) {
	e := Employee{SAPID: "5001.0", Status: StatusActive}
	if !e.MatchesSAPID("5001") {
		t.Error("legacy float id should match its integer form")
	}
	if e.MatchesSAPID("5002") {
		t.Error("different id should not match")
	}

	vacant := Employee{Status: StatusVacant}
	if vacant.MatchesSAPID("") {
		t.Error("vacant slot must never match, even against an empty id")
	}
}

func TestOccupyAndVacate(t *testing.T) {
	slot := Employee{Accommodation: "Falcon Camp", Room: "101", Status: StatusVacant}

	if err := slot.Occupy("5001", "John Smith", "Cook", "Kitchen", "India"); err != nil {
		t.Fatalf("Occupy() on vacant slot: %v", err)
	}
	if slot.Status != StatusActive {
		t.Errorf("Status = %q, want %q", slot.Status, StatusActive)
	}
	if slot.SAPID != "5001" || slot.Name != "John Smith" {
		t.Errorf("identity not set: %+v", slot)
	}

	// A second check-in into the same slot must fail.
	if err := slot.Occupy("5002", "Other", "", "", ""); err != ErrRoomNotVacant {
		t.Errorf("Occupy() on occupied slot = %v, want ErrRoomNotVacant", err)
	}

	slot.Vacate()
	if !slot.IsVacant() {
		t.Error("slot should be vacant after Vacate()")
	}
	if slot.SAPID != "" || slot.Name != "" || slot.Nationality != "" {
		t.Errorf("identity fields not cleared: %+v", slot)
	}
	if slot.Accommodation != "Falcon Camp" || slot.Room != "101" {
		t.Error("Vacate() must preserve the slot coordinates")
	}
}

func TestCheckedOutCopy(t *testing.T) {
	e := Employee{
		Accommodation: "Falcon Camp", Room: "101",
		SAPID: "5001", Name: "John Smith", Status: StatusActive,
	}
	out := e.CheckedOutCopy()

	if out.Status != StatusCheckedOut {
		t.Errorf("copy Status = %q, want %q", out.Status, StatusCheckedOut)
	}
	if out.Accommodation != DetachedAccommodation || out.Room != DetachedAccommodation {
		t.Errorf("copy must be detached from the slot, got %q/%q", out.Accommodation, out.Room)
	}
	if out.SAPID != "5001" || out.Name != "John Smith" {
		t.Error("copy must retain the identity fields")
	}
	if e.Status != StatusActive || e.Accommodation != "Falcon Camp" {
		t.Error("receiver must not be mutated")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		e       Employee
		wantErr error
	}{
		{"active occupant", Employee{SAPID: "5001", Status: StatusActive}, nil},
		{"vacant slot without id", Employee{Status: StatusVacant}, nil},
		{"occupant without id", Employee{Status: StatusActive}, ErrEmptySapID},
		{"unknown status", Employee{SAPID: "5001", Status: "OnLeave"}, ErrInvalidStatus},
		{"checked-out keeps id", Employee{SAPID: "5001", Status: StatusCheckedOut}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.e.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsOccupant(t *testing.T) {
	for _, status := range OccupantStatuses {
		e := Employee{SAPID: "1", Status: status}
		if !e.IsOccupant() {
			t.Errorf("status %q should count as occupant", status)
		}
	}
	for _, status := range []string{StatusVacant, StatusCheckedOut} {
		e := Employee{Status: status}
		if e.IsOccupant() {
			t.Errorf("status %q should not count as occupant", status)
		}
	}
}
