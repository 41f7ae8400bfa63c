package storeroom

import "testing"

func TestInventoryAddRemove(t *testing.T) {
	line := InventoryItem{Accommodation: CentralStore, Item: "Towel", Quantity: 10}

	if err := line.Add(5); err != nil {
		t.Fatalf("Add(5): %v", err)
	}
	if line.Quantity != 15 {
		t.Errorf("Quantity = %d, want 15", line.Quantity)
	}

	if err := line.Remove(15); err != nil {
		t.Fatalf("Remove(15): %v", err)
	}
	if line.Quantity != 0 {
		t.Errorf("Quantity = %d, want 0", line.Quantity)
	}

	if err := line.Remove(1); err != ErrInsufficientStock {
		t.Errorf("Remove beyond balance = %v, want ErrInsufficientStock", err)
	}
	if err := line.Add(0); err != ErrNonPositiveQuantity {
		t.Errorf("Add(0) = %v, want ErrNonPositiveQuantity", err)
	}
	if err := line.Remove(-3); err != ErrNonPositiveQuantity {
		t.Errorf("Remove(-3) = %v, want ErrNonPositiveQuantity", err)
	}
}

func TestInventoryMatches(t *testing.T) {
	line := InventoryItem{Accommodation: "Falcon Camp", Item: "Towel"}
	if !line.Matches("Falcon Camp", "Towel") {
		t.Error("exact key should match")
	}
	if line.Matches("Falcon Camp", "Pillow") || line.Matches(CentralStore, "Towel") {
		t.Error("different key must not match")
	}
}

func TestPrune(t *testing.T) {
	items := []InventoryItem{
		{Accommodation: "A", Item: "Towel", Quantity: 3},
		{Accommodation: "A", Item: "Pillow", Quantity: 0},
		{Accommodation: "B", Item: "Towel", Quantity: 1},
	}
	kept := Prune(items)
	if len(kept) != 2 {
		t.Fatalf("len(kept) = %d, want 2", len(kept))
	}
	if kept[0].Item != "Towel" || kept[1].Accommodation != "B" {
		t.Errorf("Prune must preserve order, got %+v", kept)
	}
}
