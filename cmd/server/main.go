package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	emailPkg "quarters/internal/adapters/email"
	web "quarters/internal/adapters/http"
	amcStore "quarters/internal/adapters/storage/amc"
	assetStore "quarters/internal/adapters/storage/asset"
	contractStore "quarters/internal/adapters/storage/contract"
	maintenanceStore "quarters/internal/adapters/storage/maintenance"
	staffStore "quarters/internal/adapters/storage/staff"
	storeroomStore "quarters/internal/adapters/storage/storeroom"
	userStore "quarters/internal/adapters/storage/user"
	countryDomain "quarters/internal/domain/country"
	userDomain "quarters/internal/domain/user"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	dataDir := envOrDefault("QUARTERS_DATA_DIR", "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}

	usrStore := userStore.NewJSONStore(filepath.Join(dataDir, "users.json"))
	stores := &web.Stores{
		StaffStore:        staffStore.NewJSONStore(filepath.Join(dataDir, "staff.json")),
		IssueStore:        maintenanceStore.NewJSONStore(filepath.Join(dataDir, "maintenance.json")),
		AssetStore:        assetStore.NewJSONStore(filepath.Join(dataDir, "assets.json")),
		AMCStore:          amcStore.NewJSONStore(filepath.Join(dataDir, "amcs.json")),
		ContractStore:     contractStore.NewJSONStore(filepath.Join(dataDir, "contracts.json")),
		ContractTypeStore: contractStore.NewJSONTypeStore(filepath.Join(dataDir, "contract_types.json")),
		InventoryStore:    storeroomStore.NewJSONInventoryStore(filepath.Join(dataDir, "store_inventory.json")),
		IssuedStore:       storeroomStore.NewJSONIssuedStore(filepath.Join(dataDir, "issued_items.json")),
		ItemStore:         storeroomStore.NewJSONItemStore(filepath.Join(dataDir, "store_items.json")),
		UserStore:         usrStore,
	}

	// Seed the default admin account when the user document is empty.
	adminUser := envOrDefault("QUARTERS_ADMIN_USER", userDomain.SeedAdminUsername)
	adminPassword := envOrDefault("QUARTERS_ADMIN_PASSWORD", "admin")
	if err := seedAdmin(usrStore, adminUser, adminPassword); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	// Country reference data for staff forms; the app runs without it.
	countries, err := loadCountries(envOrDefault("QUARTERS_COUNTRIES_FILE", filepath.Join(dataDir, "countries.json")))
	if err != nil {
		log.Printf("WARNING: country reference data unavailable: %v", err)
	}
	web.SetCountries(countries)

	// Configure email sender
	resendKey := os.Getenv("QUARTERS_RESEND_KEY")
	emailFrom := envOrDefault("QUARTERS_RESEND_FROM", "Quarters Desk <noreply@quarters.example>")
	maintenanceNotify := os.Getenv("QUARTERS_MAINTENANCE_NOTIFY")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, maintenanceNotify)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, maintenanceNotify)
		if os.Getenv("QUARTERS_ENV") == "production" {
			log.Println("WARNING: QUARTERS_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set QUARTERS_RESEND_KEY for real delivery)")
		}
	}

	maxUpload := int64(10 << 20)
	if raw := os.Getenv("QUARTERS_MAX_UPLOAD_BYTES"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			maxUpload = n
		}
	}

	mux := web.NewMux("static", stores, web.Config{
		UploadsDir:            filepath.Join(dataDir, "uploads"),
		MaxUploadBytes:        maxUpload,
		CentralStoreException: envOrDefault("QUARTERS_CENTRAL_STORE_EXCEPTION", "Sultan Accommodation"),
	})

	addr := envOrDefault("QUARTERS_ADDR", ":8080")
	log.Printf("Quarters %s starting on %s (env=%s, data=%s)", version, addr, envOrDefault("QUARTERS_ENV", "development"), dataDir)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// seedAdmin creates the default administrator when no accounts exist yet.
func seedAdmin(store userStore.Store, username, password string) error {
	return store.Mutate(context.Background(), func(users []userDomain.User) ([]userDomain.User, error) {
		if len(users) > 0 {
			return users, nil
		}
		admin := userDomain.User{
			Username: username,
			Role:     userDomain.RoleAdmin,
		}
		if err := admin.SetPassword(password); err != nil {
			return nil, err
		}
		log.Printf("Seeded default admin user %q — change the password after first login", username)
		return append(users, admin), nil
	})
}

// loadCountries reads the country reference document.
func loadCountries(path string) ([]countryDomain.Country, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return countryDomain.Parse(f)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
