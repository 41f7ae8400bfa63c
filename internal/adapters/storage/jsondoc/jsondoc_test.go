package jsondoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadMissingFile(t *testing.T) {
	c := New[record](filepath.Join(t.TempDir(), "missing.json"))
	items, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("missing file should load as empty non-nil list, got %v", items)
	}
}

func TestReplaceRoundTrip(t *testing.T) {
	c := New[record](filepath.Join(t.TempDir(), "records.json"))
	want := []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}}

	if err := c.Replace(want); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New[record](path)
	items, err := c.Load()
	if err != nil {
		t.Fatalf("corrupt file should not fail the request: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("corrupt file should load as empty, got %v", items)
	}
}

func TestMutateCommitsOnce(t *testing.T) {
	c := New[record](filepath.Join(t.TempDir(), "records.json"))
	if err := c.Replace([]record{{Name: "a", Count: 1}}); err != nil {
		t.Fatal(err)
	}

	err := c.Mutate(func(items []record) ([]record, error) {
		items[0].Count = 9
		return append(items, record{Name: "b", Count: 2}), nil
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	got, _ := c.Load()
	if len(got) != 2 || got[0].Count != 9 || got[1].Name != "b" {
		t.Errorf("unexpected document after Mutate: %v", got)
	}
}

func TestMutateErrorLeavesFileUntouched(t *testing.T) {
	c := New[record](filepath.Join(t.TempDir(), "records.json"))
	if err := c.Replace([]record{{Name: "a", Count: 1}}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := c.Mutate(func(items []record) ([]record, error) {
		items[0].Count = 99
		return items, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Mutate should surface fn's error, got %v", err)
	}

	got, _ := c.Load()
	if len(got) != 1 || got[0].Count != 1 {
		t.Errorf("failed Mutate must not write, got %v", got)
	}
}

func TestReplaceLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	c := New[record](filepath.Join(dir, "records.json"))
	if err := c.Replace([]record{{Name: "a"}}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "records.json" {
		t.Errorf("expected only the document file, found %v", entries)
	}
}
