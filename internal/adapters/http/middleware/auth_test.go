package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainUser "quarters/internal/domain/user"
)

func TestSessionLifecycle(t *testing.T) {
	ss := NewSessionStore()

	token, err := ss.Create("maria", domainUser.RoleUser, []string{"Falcon Camp"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token))
	}

	sess, ok := ss.Get(token)
	if !ok {
		t.Fatal("session should be retrievable")
	}
	if sess.Username != "maria" || sess.Role != domainUser.RoleUser || sess.Token != token {
		t.Errorf("session = %+v", sess)
	}

	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("deleted session should be gone")
	}
}

func TestSessionExpiry(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("maria", domainUser.RoleUser, nil)

	// Back-date the session past the 24h window.
	ss.mu.Lock()
	sess := ss.sessions[token]
	sess.CreatedAt = time.Now().Add(-25 * time.Hour)
	ss.sessions[token] = sess
	ss.mu.Unlock()

	if _, ok := ss.Get(token); ok {
		t.Error("expired session should not be returned")
	}
	if _, stillThere := ss.sessions[token]; stillThere {
		t.Error("expired session should be evicted")
	}
}

func TestFlashes(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("maria", domainUser.RoleUser, nil)

	ss.AddFlash(token, "first")
	ss.AddFlash(token, "second")

	msgs := ss.ConsumeFlashes(token)
	if len(msgs) != 2 || msgs[0] != "first" || msgs[1] != "second" {
		t.Errorf("flashes = %v", msgs)
	}
	if again := ss.ConsumeFlashes(token); len(again) != 0 {
		t.Errorf("flashes must be one-shot, got %v", again)
	}

	// An empty token is a no-op, not a shared bucket.
	ss.AddFlash("", "orphan")
	if msgs := ss.ConsumeFlashes(""); len(msgs) != 0 {
		t.Errorf("empty-token flashes = %v", msgs)
	}
}

func TestAuthMiddlewareSetsSession(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create("maria", domainUser.RoleUser, nil)

	var got Session
	var found bool
	handler := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetSessionFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	SetSessionCookie(rr, token)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !found || got.Username != "maria" {
		t.Errorf("session not set from cookie: %+v found=%v", got, found)
	}

	// An unknown token leaves the context empty.
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "quarters_session", Value: "bogus"})
	found = false
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if found {
		t.Error("bogus token must not produce a session")
	}
}

func TestRequireAuthRedirects(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login" {
		t.Errorf("code = %d location = %q, want redirect to /login", rr.Code, rr.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(ContextWithSession(req.Context(), Session{Username: "maria", Role: domainUser.RoleUser}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("authenticated request blocked: %d", rr.Code)
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(domainUser.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req = req.WithContext(ContextWithSession(req.Context(), Session{Username: "maria", Role: domainUser.RoleUser}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Errorf("non-admin code = %d, want 403", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/settings", nil)
	req = req.WithContext(ContextWithSession(req.Context(), Session{Username: "root", Role: domainUser.RoleAdmin}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("admin code = %d, want 200", rr.Code)
	}
}
