package user

import (
	"strings"
	"testing"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		allowed       []string
		accommodation string
		want          bool
	}{
		{"admin bypasses allow-list", RoleAdmin, nil, "Falcon Camp", true},
		{"manager bypasses allow-list", RoleManager, nil, "Falcon Camp", true},
		{"user with matching entry", RoleUser, []string{"Falcon Camp"}, "Falcon Camp", true},
		{"user without matching entry", RoleUser, []string{"Oasis Camp"}, "Falcon Camp", false},
		{"user with empty allow-list", RoleUser, nil, "Falcon Camp", false},
		{"unknown role treated as user", "Guest", []string{"Falcon Camp"}, "Falcon Camp", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(tt.role, tt.allowed, tt.accommodation); got != tt.want {
				t.Errorf("CanModify(%q, %v, %q) = %v, want %v", tt.role, tt.allowed, tt.accommodation, got, tt.want)
			}
		})
	}
}

func TestCanAccessCentralStore(t *testing.T) {
	const exception = "Sultan Accommodation"

	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"admin", RoleAdmin, nil, true},
		{"manager", RoleManager, nil, true},
		{"user holding the exception", RoleUser, []string{exception}, true},
		{"user without the exception", RoleUser, []string{"Falcon Camp"}, false},
		{"user with empty allow-list", RoleUser, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessCentralStore(tt.role, tt.allowed, exception); got != tt.want {
				t.Errorf("CanAccessCentralStore(%q, %v) = %v, want %v", tt.role, tt.allowed, got, tt.want)
			}
		})
	}

	// With no configured exception only privileged roles get through.
	if CanAccessCentralStore(RoleUser, []string{""}, "") {
		t.Error("empty exception must not match an empty allow-list entry")
	}
}

func TestSetPasswordAndCheck(t *testing.T) {
	u := User{Username: "maria", Role: RoleUser}
	if err := u.SetPassword("s3cret-pass"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if !strings.HasPrefix(u.Password, "$2a$") {
		t.Errorf("stored password should be a bcrypt hash, got %q", u.Password)
	}
	if err := u.CheckPassword("s3cret-pass"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := u.CheckPassword("wrong"); err != ErrWrongPassword {
		t.Errorf("CheckPassword with wrong password = %v, want ErrWrongPassword", err)
	}

	if err := u.SetPassword(""); err != ErrEmptyPassword {
		t.Errorf("SetPassword(\"\") = %v, want ErrEmptyPassword", err)
	}
}

func TestCheckPasswordLegacyCleartext(t *testing.T) {
	// Legacy user documents stored the password verbatim.
	u := User{Username: "legacy", Password: "oldpass", Role: RoleUser}
	if err := u.CheckPassword("oldpass"); err != nil {
		t.Errorf("cleartext fallback should accept the stored value: %v", err)
	}
	if err := u.CheckPassword("other"); err != ErrWrongPassword {
		t.Errorf("cleartext fallback with wrong value = %v, want ErrWrongPassword", err)
	}

	empty := User{Username: "nopass"}
	if err := empty.CheckPassword(""); err != ErrWrongPassword {
		t.Errorf("empty stored password must never authenticate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		u       User
		wantErr error
	}{
		{"valid", User{Username: "maria", Role: RoleUser}, nil},
		{"blank username", User{Username: "   ", Role: RoleUser}, ErrEmptyUsername},
		{"invalid role", User{Username: "maria", Role: "Owner"}, ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.u.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
