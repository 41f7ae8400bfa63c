package user

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role constants
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleManager, RoleUser}

// SeedAdminUsername is the default administrator account, which cannot be deleted.
const SeedAdminUsername = "admin"

// Domain errors
var (
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrInvalidRole      = errors.New("role must be one of: Admin, Manager, User")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrUsernameExists   = errors.New("username already exists")
	ErrNotFound         = errors.New("user not found")
	ErrSeedAdminDeleted = errors.New("the default admin user cannot be deleted")
)

// User is one account record. Password holds a bcrypt hash for accounts
// created here; legacy user documents carried cleartext, which CheckPassword
// still accepts so an existing users.json keeps working.
type User struct {
	Username              string   `json:"username"`
	Email                 string   `json:"email"`
	Password              string   `json:"password"`
	Role                  string   `json:"role"`
	AllowedAccommodations []string `json:"allowed_accommodations"`
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if !isValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty
// POST: Password holds the bcrypt hash
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored value.
// Bcrypt hashes are compared with bcrypt; anything else falls back to a
// cleartext comparison for legacy records.
// INVARIANT: User fields are not mutated
func (u *User) CheckPassword(plaintext string) error {
	if u.Password == "" {
		return ErrWrongPassword
	}
	if isBcryptHash(u.Password) {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) != nil {
			return ErrWrongPassword
		}
		return nil
	}
	if u.Password != plaintext {
		return ErrWrongPassword
	}
	return nil
}

// IsPrivileged returns true for roles that bypass the accommodation allow-list.
// INVARIANT: User fields are not mutated
func (u *User) IsPrivileged() bool {
	return Privileged(u.Role)
}

// Privileged reports whether a role bypasses the accommodation allow-list.
func Privileged(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

// CanModify decides whether a session with the given role and allow-list may
// modify records belonging to an accommodation.
// PRE: accommodation is the record's scoping location
// POST: true for Admin/Manager, else allow-list membership
func CanModify(role string, allowed []string, accommodation string) bool {
	if Privileged(role) {
		return true
	}
	for _, a := range allowed {
		if a == accommodation {
			return true
		}
	}
	return false
}

// CanAccessCentralStore decides whether a session may operate on the central
// store. Beyond Admin/Manager, a single named accommodation in the allow-list
// grants access; the name is a documented site quirk kept in configuration.
func CanAccessCentralStore(role string, allowed []string, exception string) bool {
	if Privileged(role) {
		return true
	}
	if exception == "" {
		return false
	}
	for _, a := range allowed {
		if a == exception {
			return true
		}
	}
	return false
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
