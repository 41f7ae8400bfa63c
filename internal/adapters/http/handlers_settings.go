package web

import (
	"net/http"
	"strings"

	"quarters/internal/application/orchestrators"
	"quarters/internal/application/projections"
	userDomain "quarters/internal/domain/user"
)

// handleSettings handles GET /settings: the user management page.
func handleSettings(w http.ResponseWriter, r *http.Request) {
	users, err := stores.UserStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	staffRecords, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	// Stored password hashes stay server-side.
	for i := range users {
		users[i].Password = ""
	}

	renderTemplate(w, r, "settings.html", map[string]any{
		"Users":          users,
		"Roles":          userDomain.ValidRoles,
		"Accommodations": projections.Accommodations(staffRecords),
		"SeedAdmin":      userDomain.SeedAdminUsername,
	})
}

// handleEditUser handles GET /edit_user/{name}: the edit form.
func handleEditUser(w http.ResponseWriter, r *http.Request) {
	u, err := stores.UserStore.GetByUsername(r.Context(), r.PathValue("name"))
	if err != nil {
		handleOperationError(w, r, err, "/settings")
		return
	}
	staffRecords, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	u.Password = ""

	renderTemplate(w, r, "edit_user.html", map[string]any{
		"User":           u,
		"Roles":          userDomain.ValidRoles,
		"Accommodations": projections.Accommodations(staffRecords),
	})
}

// handleAddUser handles POST /add_user.
func handleAddUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.AddUserInput{
		Actor:                 actor(r),
		Username:              strings.TrimSpace(r.FormValue("username")),
		Email:                 strings.TrimSpace(r.FormValue("email")),
		Password:              r.FormValue("password"),
		Role:                  r.FormValue("role"),
		AllowedAccommodations: r.Form["allowed_accommodations"],
	}
	if err := orchestrators.ExecuteAddUser(r.Context(), input, orchestrators.AddUserDeps{
		Users: stores.UserStore,
	}); err != nil {
		handleOperationError(w, r, err, "/settings")
		return
	}
	flashAndRedirect(w, r, "User added", "/settings")
}

// handleUpdateUser handles POST /update_user/{name}.
func handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.UpdateUserInput{
		Actor:                 actor(r),
		Username:              r.PathValue("name"),
		Email:                 strings.TrimSpace(r.FormValue("email")),
		Password:              r.FormValue("password"),
		Role:                  r.FormValue("role"),
		AllowedAccommodations: r.Form["allowed_accommodations"],
	}
	if err := orchestrators.ExecuteUpdateUser(r.Context(), input, orchestrators.UpdateUserDeps{
		Users: stores.UserStore,
	}); err != nil {
		handleOperationError(w, r, err, "/settings")
		return
	}
	flashAndRedirect(w, r, "User updated", "/settings")
}

// handleDeleteUser handles POST /delete_user/{name}.
func handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.DeleteUserInput{
		Actor:    actor(r),
		Username: r.PathValue("name"),
	}
	if err := orchestrators.ExecuteDeleteUser(r.Context(), input, orchestrators.DeleteUserDeps{
		Users: stores.UserStore,
	}); err != nil {
		handleOperationError(w, r, err, "/settings")
		return
	}
	flashAndRedirect(w, r, "User deleted", "/settings")
}
