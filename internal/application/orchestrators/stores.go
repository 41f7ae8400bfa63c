// Package orchestrators holds one Execute function per write operation. Each
// function receives its input, a Deps struct of narrow store interfaces, and
// runs the whole mutation inside a single store Mutate call so a failed guard
// never leaves a partial write behind.
package orchestrators

import (
	"context"
	"errors"

	amcDomain "quarters/internal/domain/amc"
	assetDomain "quarters/internal/domain/asset"
	contractDomain "quarters/internal/domain/contract"
	maintenanceDomain "quarters/internal/domain/maintenance"
	staffDomain "quarters/internal/domain/staff"
	storeroomDomain "quarters/internal/domain/storeroom"
	userDomain "quarters/internal/domain/user"
)

// ErrPermissionDenied is returned when the acting session may not touch the
// record's accommodation. Handlers turn it into an "Access Denied" notice.
var ErrPermissionDenied = errors.New("access denied")

// Actor identifies the session performing an operation.
type Actor struct {
	Username              string
	Role                  string
	AllowedAccommodations []string
}

// CanModify reports whether the actor may modify records of an accommodation.
func (a Actor) CanModify(accommodation string) bool {
	return userDomain.CanModify(a.Role, a.AllowedAccommodations, accommodation)
}

// StaffStore is the store interface staff orchestrators need.
type StaffStore interface {
	All(ctx context.Context) ([]staffDomain.Employee, error)
	Mutate(ctx context.Context, fn func([]staffDomain.Employee) ([]staffDomain.Employee, error)) error
}

// IssueStore is the store interface maintenance orchestrators need.
type IssueStore interface {
	All(ctx context.Context) ([]maintenanceDomain.Issue, error)
	Mutate(ctx context.Context, fn func([]maintenanceDomain.Issue) ([]maintenanceDomain.Issue, error)) error
}

// AssetStore is the store interface asset orchestrators need.
type AssetStore interface {
	All(ctx context.Context) ([]assetDomain.Asset, error)
	Mutate(ctx context.Context, fn func([]assetDomain.Asset) ([]assetDomain.Asset, error)) error
}

// InventoryStore is the stock-balance store interface store orchestrators need.
type InventoryStore interface {
	All(ctx context.Context) ([]storeroomDomain.InventoryItem, error)
	Mutate(ctx context.Context, fn func([]storeroomDomain.InventoryItem) ([]storeroomDomain.InventoryItem, error)) error
}

// IssuedStore is the append-only issued-history interface.
type IssuedStore interface {
	All(ctx context.Context) ([]storeroomDomain.IssuedItem, error)
	Append(ctx context.Context, item storeroomDomain.IssuedItem) error
}

// ItemStore is the master item catalogue interface.
type ItemStore interface {
	All(ctx context.Context) ([]string, error)
	Mutate(ctx context.Context, fn func([]string) ([]string, error)) error
}

// AMCStore is the store interface AMC orchestrators need.
type AMCStore interface {
	All(ctx context.Context) ([]amcDomain.AMC, error)
	Mutate(ctx context.Context, fn func([]amcDomain.AMC) ([]amcDomain.AMC, error)) error
}

// ContractStore is the store interface contract orchestrators need.
type ContractStore interface {
	All(ctx context.Context) ([]contractDomain.Contract, error)
	Mutate(ctx context.Context, fn func([]contractDomain.Contract) ([]contractDomain.Contract, error)) error
}

// ContractTypeStore is the contract-type catalogue interface.
type ContractTypeStore interface {
	All(ctx context.Context) ([]string, error)
	Mutate(ctx context.Context, fn func([]string) ([]string, error)) error
}

// UserStore is the account store interface user orchestrators need.
type UserStore interface {
	All(ctx context.Context) ([]userDomain.User, error)
	GetByUsername(ctx context.Context, username string) (userDomain.User, error)
	Mutate(ctx context.Context, fn func([]userDomain.User) ([]userDomain.User, error)) error
}
