// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to DwellHub lives: the listing
// backend endpoint, session settings, and the configured admin account.
type AppConfig struct {
	// Listing backend configuration
	APIBaseURL string        // Base URL of the listing REST backend (e.g. http://localhost:8000)
	APIKey     string        // Bearer token sent on every backend request (blank disables auth)
	APITimeout time.Duration // Per-request timeout for backend calls

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: dwellhub-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionTTL    time.Duration // Session lifetime

	// Admin account (single-account back office)
	AdminLoginID      string // Login ID the admin types at /login
	AdminPasswordHash string // bcrypt hash of the admin password
	AdminName         string // Display name shown in the back office

	// Public site
	SiteName      string // Brand name used across page titles
	FeaturedLimit int    // Max featured properties on the home page
}
