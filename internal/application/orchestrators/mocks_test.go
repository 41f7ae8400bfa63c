package orchestrators

import (
	"context"

	staffDomain "quarters/internal/domain/staff"
	storeroomDomain "quarters/internal/domain/storeroom"
	userDomain "quarters/internal/domain/user"
)

// --- Mock staff store ---

type mockStaffStore struct {
	records []staffDomain.Employee
	saves   int
}

func (m *mockStaffStore) All(_ context.Context) ([]staffDomain.Employee, error) {
	out := make([]staffDomain.Employee, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Mutate mirrors the document store: fn runs on a copy and the result is
// committed only when fn succeeds.
func (m *mockStaffStore) Mutate(_ context.Context, fn func([]staffDomain.Employee) ([]staffDomain.Employee, error)) error {
	work := make([]staffDomain.Employee, len(m.records))
	copy(work, m.records)
	updated, err := fn(work)
	if err != nil {
		return err
	}
	m.records = updated
	m.saves++
	return nil
}

// --- Mock inventory store ---

type mockInventoryStore struct {
	items []storeroomDomain.InventoryItem
	saves int
}

func (m *mockInventoryStore) All(_ context.Context) ([]storeroomDomain.InventoryItem, error) {
	out := make([]storeroomDomain.InventoryItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockInventoryStore) Mutate(_ context.Context, fn func([]storeroomDomain.InventoryItem) ([]storeroomDomain.InventoryItem, error)) error {
	work := make([]storeroomDomain.InventoryItem, len(m.items))
	copy(work, m.items)
	updated, err := fn(work)
	if err != nil {
		return err
	}
	m.items = updated
	m.saves++
	return nil
}

// --- Mock issued-history store ---

type mockIssuedStore struct {
	items     []storeroomDomain.IssuedItem
	appendErr error
}

func (m *mockIssuedStore) All(_ context.Context) ([]storeroomDomain.IssuedItem, error) {
	out := make([]storeroomDomain.IssuedItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockIssuedStore) Append(_ context.Context, item storeroomDomain.IssuedItem) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.items = append(m.items, item)
	return nil
}

// --- Mock catalogue store ---

type mockItemStore struct {
	items []string
}

func (m *mockItemStore) All(_ context.Context) ([]string, error) {
	out := make([]string, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockItemStore) Mutate(_ context.Context, fn func([]string) ([]string, error)) error {
	work := make([]string, len(m.items))
	copy(work, m.items)
	updated, err := fn(work)
	if err != nil {
		return err
	}
	m.items = updated
	return nil
}

// --- Mock user store ---

type mockUserStore struct {
	users []userDomain.User
}

func (m *mockUserStore) All(_ context.Context) ([]userDomain.User, error) {
	out := make([]userDomain.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *mockUserStore) GetByUsername(_ context.Context, username string) (userDomain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return userDomain.User{}, userDomain.ErrNotFound
}

func (m *mockUserStore) Mutate(_ context.Context, fn func([]userDomain.User) ([]userDomain.User, error)) error {
	work := make([]userDomain.User, len(m.users))
	copy(work, m.users)
	updated, err := fn(work)
	if err != nil {
		return err
	}
	m.users = updated
	return nil
}

// --- Shared fixtures ---

var adminActor = Actor{Username: "admin", Role: userDomain.RoleAdmin}

func scopedActor(accommodations ...string) Actor {
	return Actor{Username: "clerk", Role: userDomain.RoleUser, AllowedAccommodations: accommodations}
}

func vacantSlot(accommodation, room string) staffDomain.Employee {
	return staffDomain.Employee{Accommodation: accommodation, Room: room, Status: staffDomain.StatusVacant}
}

func occupiedSlot(accommodation, room, sapID, name string) staffDomain.Employee {
	return staffDomain.Employee{
		Accommodation: accommodation, Room: room,
		SAPID: sapID, Name: name, Status: staffDomain.StatusActive,
	}
}
