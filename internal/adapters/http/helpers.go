package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"quarters/internal/adapters/http/middleware"
	"quarters/internal/application/orchestrators"
	amcDomain "quarters/internal/domain/amc"
	assetDomain "quarters/internal/domain/asset"
	contractDomain "quarters/internal/domain/contract"
	maintenanceDomain "quarters/internal/domain/maintenance"
	staffDomain "quarters/internal/domain/staff"
	storeroomDomain "quarters/internal/domain/storeroom"
	userDomain "quarters/internal/domain/user"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// writeJSON marshals v to the response with the JSON content type.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json_encode_failed", "error", err.Error())
	}
}

// actor builds the orchestrator actor from the request session.
func actor(r *http.Request) orchestrators.Actor {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	return orchestrators.Actor{
		Username:              sess.Username,
		Role:                  sess.Role,
		AllowedAccommodations: sess.AllowedAccommodations,
	}
}

// flash queues a one-shot notice for the current session.
func flash(r *http.Request, message string) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		sessions.AddFlash(sess.Token, message)
	}
}

// flashAndRedirect queues a notice and redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, message, location string) {
	flash(r, message)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// userErrors are the domain failures shown to the user as notices rather than
// treated as internal errors.
var userErrors = []error{
	orchestrators.ErrPermissionDenied,
	orchestrators.ErrUnknownAction,
	staffDomain.ErrRoomNotVacant,
	staffDomain.ErrTargetNotVacant,
	staffDomain.ErrDuplicateSapID,
	staffDomain.ErrNotFound,
	staffDomain.ErrEmptySapID,
	staffDomain.ErrInvalidStatus,
	maintenanceDomain.ErrNotFound,
	maintenanceDomain.ErrInvalidStatus,
	maintenanceDomain.ErrEmptyAccommodation,
	assetDomain.ErrInsufficientQuantity,
	assetDomain.ErrNonPositiveQuantity,
	assetDomain.ErrEmptyName,
	assetDomain.ErrNotFound,
	storeroomDomain.ErrInsufficientStock,
	storeroomDomain.ErrNonPositiveQuantity,
	storeroomDomain.ErrEmptyItemName,
	storeroomDomain.ErrItemExists,
	storeroomDomain.ErrNotFound,
	amcDomain.ErrEmptyAccommodation,
	amcDomain.ErrEmptyVendor,
	contractDomain.ErrEmptyAccommodation,
	contractDomain.ErrEmptyType,
	contractDomain.ErrTypeExists,
	contractDomain.ErrNotFound,
	userDomain.ErrUsernameExists,
	userDomain.ErrNotFound,
	userDomain.ErrSeedAdminDeleted,
	userDomain.ErrEmptyUsername,
	userDomain.ErrEmptyPassword,
	userDomain.ErrInvalidRole,
}

// handleOperationError maps a failed write to a flash + redirect. Unknown
// errors become internal errors.
func handleOperationError(w http.ResponseWriter, r *http.Request, err error, redirectTo string) {
	if errors.Is(err, orchestrators.ErrPermissionDenied) {
		flashAndRedirect(w, r, "Access Denied", redirectTo)
		return
	}
	for _, known := range userErrors {
		if errors.Is(err, known) {
			flashAndRedirect(w, r, err.Error(), redirectTo)
			return
		}
	}
	// Import validation failures carry row/column context worth surfacing.
	if strings.Contains(err.Error(), "missing required columns") {
		flashAndRedirect(w, r, err.Error(), redirectTo)
		return
	}
	internalError(w, err)
}

// formInt parses an integer form value, tolerating spreadsheet-style floats.
func formInt(r *http.Request, field string) int {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// saveAttachment stores an uploaded file under uploads/<subdir> with a
// sanitized, timestamped name. Returns "" when no file was submitted.
// POST: the returned name is safe to serve back via serveAttachment
func saveAttachment(file multipart.File, header *multipart.FileHeader, subdir string) (string, error) {
	if header == nil || header.Filename == "" {
		return "", nil
	}
	base := filepath.Base(header.Filename)
	base = strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		case c == '.', c == '-', c == '_':
			return c
		}
		return '_'
	}, base)
	name := fmt.Sprintf("%d_%s", timeNow().UnixMilli(), base)

	dir := filepath.Join(config.UploadsDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}

// serveAttachment streams a stored upload, refusing path traversal.
func serveAttachment(w http.ResponseWriter, r *http.Request, subdir, name string) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		http.NotFound(w, r)
		return
	}
	path := filepath.Join(config.UploadsDir, subdir, name)
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// removeAttachment deletes a stored upload, ignoring missing files.
func removeAttachment(subdir, name string) {
	if name == "" || name != filepath.Base(name) {
		return
	}
	if err := os.Remove(filepath.Join(config.UploadsDir, subdir, name)); err != nil && !os.IsNotExist(err) {
		slog.Warn("attachment_remove_failed", "file", name, "error", err)
	}
}
