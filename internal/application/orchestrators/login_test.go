package orchestrators

import (
	"context"
	"errors"
	"testing"

	userDomain "quarters/internal/domain/user"
)

func seededUserStore(t *testing.T) *mockUserStore {
	t.Helper()
	u := userDomain.User{Username: "maria", Role: userDomain.RoleUser, AllowedAccommodations: []string{"Falcon Camp"}}
	if err := u.SetPassword("s3cret-pass"); err != nil {
		t.Fatal(err)
	}
	legacy := userDomain.User{Username: "legacy", Password: "oldpass", Role: userDomain.RoleUser}
	return &mockUserStore{users: []userDomain.User{u, legacy}}
}

func TestExecuteLogin(t *testing.T) {
	users := seededUserStore(t)

	got, err := ExecuteLogin(context.Background(), LoginInput{
		Username: " maria ", Password: "s3cret-pass",
	}, LoginDeps{Users: users})
	if err != nil {
		t.Fatalf("ExecuteLogin: %v", err)
	}
	if got.Username != "maria" || got.Role != userDomain.RoleUser {
		t.Errorf("unexpected account: %+v", got)
	}
	if got.Password != "" {
		t.Error("returned account must not carry the stored password")
	}
}

func TestExecuteLoginLegacyCleartext(t *testing.T) {
	users := seededUserStore(t)

	if _, err := ExecuteLogin(context.Background(), LoginInput{
		Username: "legacy", Password: "oldpass",
	}, LoginDeps{Users: users}); err != nil {
		t.Fatalf("legacy account login: %v", err)
	}
}

func TestExecuteLoginFailures(t *testing.T) {
	users := seededUserStore(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "whatever"},
		{"wrong password", "maria", "wrong"},
		{"empty username", "", "s3cret-pass"},
		{"empty password", "maria", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExecuteLogin(context.Background(), LoginInput{
				Username: tt.username, Password: tt.password,
			}, LoginDeps{Users: users})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestExecuteAddUser(t *testing.T) {
	users := seededUserStore(t)

	err := ExecuteAddUser(context.Background(), AddUserInput{
		Actor: adminActor, Username: "newbie", Password: "pass-1234",
		Role: userDomain.RoleUser, AllowedAccommodations: []string{"Oasis Camp"},
	}, AddUserDeps{Users: users})
	if err != nil {
		t.Fatalf("ExecuteAddUser: %v", err)
	}

	stored, err := users.GetByUsername(context.Background(), "newbie")
	if err != nil {
		t.Fatal(err)
	}
	if err := stored.CheckPassword("pass-1234"); err != nil {
		t.Errorf("stored password should verify: %v", err)
	}

	err = ExecuteAddUser(context.Background(), AddUserInput{
		Actor: adminActor, Username: "maria", Password: "x", Role: userDomain.RoleUser,
	}, AddUserDeps{Users: users})
	if !errors.Is(err, userDomain.ErrUsernameExists) {
		t.Errorf("duplicate username = %v, want ErrUsernameExists", err)
	}

	managerActor := Actor{Username: "boss", Role: userDomain.RoleManager}
	err = ExecuteAddUser(context.Background(), AddUserInput{
		Actor: managerActor, Username: "other", Password: "x", Role: userDomain.RoleUser,
	}, AddUserDeps{Users: users})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("manager creating accounts = %v, want ErrPermissionDenied", err)
	}
}

func TestExecuteUpdateUserKeepsPassword(t *testing.T) {
	users := seededUserStore(t)

	err := ExecuteUpdateUser(context.Background(), UpdateUserInput{
		Actor: adminActor, Username: "maria",
		Role: userDomain.RoleManager, AllowedAccommodations: nil,
	}, UpdateUserDeps{Users: users})
	if err != nil {
		t.Fatalf("ExecuteUpdateUser: %v", err)
	}

	stored, _ := users.GetByUsername(context.Background(), "maria")
	if stored.Role != userDomain.RoleManager {
		t.Errorf("Role = %q, want Manager", stored.Role)
	}
	if err := stored.CheckPassword("s3cret-pass"); err != nil {
		t.Errorf("empty password input must keep the old password: %v", err)
	}
}

func TestExecuteDeleteUser(t *testing.T) {
	users := seededUserStore(t)

	if err := ExecuteDeleteUser(context.Background(), DeleteUserInput{
		Actor: adminActor, Username: "legacy",
	}, DeleteUserDeps{Users: users}); err != nil {
		t.Fatalf("ExecuteDeleteUser: %v", err)
	}
	if _, err := users.GetByUsername(context.Background(), "legacy"); !errors.Is(err, userDomain.ErrNotFound) {
		t.Error("account should be gone")
	}

	err := ExecuteDeleteUser(context.Background(), DeleteUserInput{
		Actor: adminActor, Username: userDomain.SeedAdminUsername,
	}, DeleteUserDeps{Users: users})
	if !errors.Is(err, userDomain.ErrSeedAdminDeleted) {
		t.Errorf("deleting the seed admin = %v, want ErrSeedAdminDeleted", err)
	}
}
