package orchestrators

import (
	"context"
	"log/slog"

	userDomain "quarters/internal/domain/user"
)

// AddUserInput carries input for creating an account.
type AddUserInput struct {
	Actor                 Actor
	Username              string
	Email                 string
	Password              string
	Role                  string
	AllowedAccommodations []string
}

// AddUserDeps holds dependencies for AddUser.
type AddUserDeps struct {
	Users UserStore
}

// ExecuteAddUser creates an account with a bcrypt-hashed password.
// PRE: actor is Admin; username is new; password is non-empty
// POST: account appended
func ExecuteAddUser(ctx context.Context, input AddUserInput, deps AddUserDeps) error {
	if input.Actor.Role != userDomain.RoleAdmin {
		return ErrPermissionDenied
	}

	u := userDomain.User{
		Username:              input.Username,
		Email:                 input.Email,
		Role:                  input.Role,
		AllowedAccommodations: input.AllowedAccommodations,
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if err := u.SetPassword(input.Password); err != nil {
		return err
	}

	err := deps.Users.Mutate(ctx, func(users []userDomain.User) ([]userDomain.User, error) {
		for i := range users {
			if users[i].Username == u.Username {
				return nil, userDomain.ErrUsernameExists
			}
		}
		return append(users, u), nil
	})
	if err != nil {
		return err
	}

	slog.Info("user_event", "event", "user_added", "username", u.Username, "role", u.Role, "actor", input.Actor.Username)
	return nil
}

// UpdateUserInput carries the editable fields of an account. An empty
// Password leaves the stored password unchanged.
type UpdateUserInput struct {
	Actor                 Actor
	Username              string
	Email                 string
	Password              string
	Role                  string
	AllowedAccommodations []string
}

// UpdateUserDeps holds dependencies for UpdateUser.
type UpdateUserDeps struct {
	Users UserStore
}

// ExecuteUpdateUser edits an account in place.
// PRE: actor is Admin; the account exists
// POST: fields updated; password re-hashed only when a new one was given
func ExecuteUpdateUser(ctx context.Context, input UpdateUserInput, deps UpdateUserDeps) error {
	if input.Actor.Role != userDomain.RoleAdmin {
		return ErrPermissionDenied
	}

	err := deps.Users.Mutate(ctx, func(users []userDomain.User) ([]userDomain.User, error) {
		for i := range users {
			if users[i].Username != input.Username {
				continue
			}
			users[i].Email = input.Email
			users[i].Role = input.Role
			users[i].AllowedAccommodations = input.AllowedAccommodations
			if err := users[i].Validate(); err != nil {
				return nil, err
			}
			if input.Password != "" {
				if err := users[i].SetPassword(input.Password); err != nil {
					return nil, err
				}
			}
			return users, nil
		}
		return nil, userDomain.ErrNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("user_event", "event", "user_updated", "username", input.Username, "actor", input.Actor.Username)
	return nil
}

// DeleteUserInput carries input for removing an account.
type DeleteUserInput struct {
	Actor    Actor
	Username string
}

// DeleteUserDeps holds dependencies for DeleteUser.
type DeleteUserDeps struct {
	Users UserStore
}

// ExecuteDeleteUser removes an account. The seed admin account is protected.
// PRE: actor is Admin; the account exists and is not the seed admin
// POST: the account is gone
func ExecuteDeleteUser(ctx context.Context, input DeleteUserInput, deps DeleteUserDeps) error {
	if input.Actor.Role != userDomain.RoleAdmin {
		return ErrPermissionDenied
	}
	if input.Username == userDomain.SeedAdminUsername {
		return userDomain.ErrSeedAdminDeleted
	}

	err := deps.Users.Mutate(ctx, func(users []userDomain.User) ([]userDomain.User, error) {
		for i := range users {
			if users[i].Username == input.Username {
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, userDomain.ErrNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("user_event", "event", "user_deleted", "username", input.Username, "actor", input.Actor.Username)
	return nil
}
