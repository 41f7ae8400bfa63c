// Package web wires the HTTP surface: routes, handlers, template rendering,
// sessions, and the middleware stack.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"quarters/internal/adapters/email"
	"quarters/internal/adapters/http/middleware"
	amcStore "quarters/internal/adapters/storage/amc"
	assetStore "quarters/internal/adapters/storage/asset"
	contractStore "quarters/internal/adapters/storage/contract"
	maintenanceStore "quarters/internal/adapters/storage/maintenance"
	staffStore "quarters/internal/adapters/storage/staff"
	storeroomStore "quarters/internal/adapters/storage/storeroom"
	userStore "quarters/internal/adapters/storage/user"
	countryDomain "quarters/internal/domain/country"
)

// Stores holds all storage dependencies.
type Stores struct {
	StaffStore        staffStore.Store
	IssueStore        maintenanceStore.Store
	AssetStore        assetStore.Store
	AMCStore          amcStore.Store
	ContractStore     contractStore.Store
	ContractTypeStore contractStore.TypeStore
	InventoryStore    storeroomStore.InventoryStore
	IssuedStore       storeroomStore.IssuedStore
	ItemStore         storeroomStore.ItemStore
	UserStore         userStore.Store
}

// Config carries the request-path settings NewMux needs beyond stores.
type Config struct {
	UploadsDir            string // attachment directory, uploads/{amcs,contracts} beneath
	MaxUploadBytes        int64  // per-request multipart cap
	CentralStoreException string // allow-list accommodation granted central-store access
}

// loadCSRFKey reads the CSRF secret from QUARTERS_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("QUARTERS_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("QUARTERS_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("QUARTERS_ENV") == "production" {
		log.Fatal("QUARTERS_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set QUARTERS_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global request-path configuration (set by NewMux)
var config Config

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var maintenanceNotifyAddress string

// Reference data loaded once at startup (set by SetCountries)
var countries []countryDomain.Country

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, maintenanceNotify string) {
	emailSender = sender
	emailFromAddress = from
	maintenanceNotifyAddress = maintenanceNotify
}

// SetCountries sets the country reference data used by staff forms.
func SetCountries(c []countryDomain.Country) {
	countries = c
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, cfg Config) http.Handler {
	stores = s
	config = cfg
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("QUARTERS_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
