package browser_test

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestSmoke_NavigationCrawl verifies all major pages load without errors.
func TestSmoke_NavigationCrawl(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)

	routes := []struct {
		path       string
		authed     bool
		wantStatus int
	}{
		{path: "/login", authed: false, wantStatus: 200},

		{path: "/dashboard", authed: true, wantStatus: 200},
		{path: "/accommodation", authed: true, wantStatus: 200},
		{path: "/maintenance", authed: true, wantStatus: 200},
		{path: "/assets", authed: true, wantStatus: 200},
		{path: "/store", authed: true, wantStatus: 200},
		{path: "/amcs", authed: true, wantStatus: 200},
		{path: "/contracts", authed: true, wantStatus: 200},
		{path: "/settings", authed: true, wantStatus: 200},
	}

	for _, route := range routes {
		t.Run(strings.ReplaceAll(route.path, "/", "_"), func(t *testing.T) {
			page := app.newPage(t)

			if route.authed {
				app.login(t, page)
			}

			resp, err := page.Goto(app.BaseURL + route.path)
			if err != nil {
				t.Errorf("failed to navigate to %s: %v", route.path, err)
				return
			}
			if resp.Status() != route.wantStatus {
				t.Errorf("%s: got status %d, want %d", route.path, resp.Status(), route.wantStatus)
			}
		})
	}
}

// TestSmoke_LoginLogout verifies the full session round trip in a real browser.
func TestSmoke_LoginLogout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	app.login(t, page)

	if _, err := page.Goto(app.BaseURL + "/logout"); err != nil {
		t.Fatalf("failed to navigate to logout: %v", err)
	}
	// The session is gone, so a protected page bounces back to login.
	resp, err := page.Goto(app.BaseURL + "/dashboard")
	if err != nil {
		t.Fatalf("failed to navigate to dashboard: %v", err)
	}
	if !strings.HasSuffix(resp.URL(), "/login") {
		t.Errorf("after logout, dashboard should redirect to /login, landed on %s", resp.URL())
	}
}

// TestSmoke_NoConsoleErrors verifies key pages load without JavaScript errors.
func TestSmoke_NoConsoleErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	var errors []string
	page.On("console", func(msg playwright.ConsoleMessage) {
		if msg.Type() == "error" {
			errors = append(errors, msg.Text())
		}
	})

	app.login(t, page)

	for _, path := range []string{"/dashboard", "/maintenance", "/store"} {
		page.Goto(app.BaseURL + path)
		page.WaitForTimeout(500)
	}

	if len(errors) > 0 {
		t.Errorf("console errors found: %v", errors)
	}
}
