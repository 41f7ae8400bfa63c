package browser_test

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"quarters/internal/adapters/email"
	web "quarters/internal/adapters/http"
	"quarters/internal/adapters/http/middleware"
	amcStore "quarters/internal/adapters/storage/amc"
	assetStore "quarters/internal/adapters/storage/asset"
	contractStore "quarters/internal/adapters/storage/contract"
	maintenanceStore "quarters/internal/adapters/storage/maintenance"
	staffStore "quarters/internal/adapters/storage/staff"
	storeroomStore "quarters/internal/adapters/storage/storeroom"
	userStore "quarters/internal/adapters/storage/user"
	userDomain "quarters/internal/domain/user"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
	tmpDir  string
}

// newTestApp creates a fully wired app backed by JSON documents in a temp
// directory and starts an HTTP server on a free port.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	tmpDir := t.TempDir()
	usrStore := userStore.NewJSONStore(filepath.Join(tmpDir, "users.json"))
	stores := &web.Stores{
		StaffStore:        staffStore.NewJSONStore(filepath.Join(tmpDir, "staff.json")),
		IssueStore:        maintenanceStore.NewJSONStore(filepath.Join(tmpDir, "maintenance.json")),
		AssetStore:        assetStore.NewJSONStore(filepath.Join(tmpDir, "assets.json")),
		AMCStore:          amcStore.NewJSONStore(filepath.Join(tmpDir, "amcs.json")),
		ContractStore:     contractStore.NewJSONStore(filepath.Join(tmpDir, "contracts.json")),
		ContractTypeStore: contractStore.NewJSONTypeStore(filepath.Join(tmpDir, "contract_types.json")),
		InventoryStore:    storeroomStore.NewJSONInventoryStore(filepath.Join(tmpDir, "store_inventory.json")),
		IssuedStore:       storeroomStore.NewJSONIssuedStore(filepath.Join(tmpDir, "issued_items.json")),
		ItemStore:         storeroomStore.NewJSONItemStore(filepath.Join(tmpDir, "store_items.json")),
		UserStore:         usrStore,
	}

	// Seed admin so login goes straight to the dashboard.
	seedErr := usrStore.Mutate(context.Background(), func(users []userDomain.User) ([]userDomain.User, error) {
		admin := userDomain.User{Username: "admin", Role: userDomain.RoleAdmin}
		if err := admin.SetPassword("TestPass123!"); err != nil {
			return nil, err
		}
		return append(users, admin), nil
	})
	if seedErr != nil {
		t.Fatalf("failed to seed admin: %v", seedErr)
	}

	web.SetEmailSender(email.NewNoopSender(), "Quarters Desk <noreply@quarters.example>", "")

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	// Start HTTP server
	mux := web.NewMux("static", stores, web.Config{
		UploadsDir:            filepath.Join(tmpDir, "uploads"),
		MaxUploadBytes:        10 << 20,
		CentralStoreException: "Sultan Accommodation",
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	// Start Playwright
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
		tmpDir:  tmpDir,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login navigates to the login page and logs in as the seeded admin.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	_, err := page.Goto(a.BaseURL + "/login")
	if err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=username]").Fill("admin"); err != nil {
		t.Fatalf("failed to fill username: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill("TestPass123!"); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	// Wait for redirect to dashboard
	if err := page.WaitForURL(a.BaseURL+"/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to dashboard: %v", err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
