package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	userDomain "quarters/internal/domain/user"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Users UserStore
}

// ExecuteLogin verifies credentials against the user store.
// PRE: none
// POST: on success returns the stored account; the password field is cleared
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (userDomain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return userDomain.User{}, ErrInvalidCredentials
	}

	u, err := deps.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			slog.Info("auth_event", "event", "login_failed", "username", username, "reason", "unknown_user")
			return userDomain.User{}, ErrInvalidCredentials
		}
		return userDomain.User{}, err
	}

	if err := u.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", username, "reason", "wrong_password")
		return userDomain.User{}, ErrInvalidCredentials
	}

	u.Password = ""
	slog.Info("auth_event", "event", "login_succeeded", "username", username, "role", u.Role)
	return u, nil
}
