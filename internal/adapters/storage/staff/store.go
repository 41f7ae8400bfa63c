package staff

import (
	"context"

	domain "quarters/internal/domain/staff"
)

// Store persists the staff room-slot document.
type Store interface {
	// All returns the full record list.
	All(ctx context.Context) ([]domain.Employee, error)
	// Replace overwrites the full record list.
	Replace(ctx context.Context, employees []domain.Employee) error
	// Mutate applies fn to the record list under the store's write lock and
	// persists the result with one save. Returning an error aborts the write.
	Mutate(ctx context.Context, fn func(employees []domain.Employee) ([]domain.Employee, error)) error
}
