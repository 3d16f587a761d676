// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for DwellHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: DWELLHUB_API_BASE_URL, DWELLHUB_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000", Desc: "Base URL of the listing backend API"},
	{Name: "api_key", Default: "", Desc: "Bearer token for the listing backend (blank disables auth)"},
	{Name: "api_timeout", Default: "10s", Desc: "Per-request timeout for backend calls (e.g., 10s, 1m)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "dwellhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_ttl", Default: "24h", Desc: "Session lifetime (e.g., 24h, 30m)"},

	// Admin account for the back office
	{Name: "admin_login_id", Default: "", Desc: "Login ID for the admin account"},
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the admin password"},
	{Name: "admin_name", Default: "Administrator", Desc: "Display name for the admin account"},

	// Public site
	{Name: "site_name", Default: "DwellHub", Desc: "Brand name used in page titles"},
	{Name: "featured_limit", Default: 6, Desc: "Max featured properties on the home page"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, DWELLHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DWELLHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: appValues.String("api_base_url"),
		APIKey:     appValues.String("api_key"),
		APITimeout: appValues.Duration("api_timeout", 10*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionTTL:    appValues.Duration("session_ttl", 24*time.Hour),

		AdminLoginID:      appValues.String("admin_login_id"),
		AdminPasswordHash: appValues.String("admin_password_hash"),
		AdminName:         appValues.String("admin_name"),

		SiteName:      appValues.String("site_name"),
		FeaturedLimit: appValues.Int("featured_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// DwellHub validates the backend URL format to catch configuration errors
// early, before attempting any requests, and refuses to start in production
// without real admin credentials.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		logger.Error("invalid backend URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("invalid api_base_url %q: need an absolute http(s) URL", appCfg.APIBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api_base_url scheme %q: need http or https", u.Scheme)
	}

	if coreCfg.Env == "prod" {
		if appCfg.AdminLoginID == "" || appCfg.AdminPasswordHash == "" {
			return fmt.Errorf("admin_login_id and admin_password_hash are required in production")
		}
		if appCfg.SessionKey == "dev-only-change-me-please-0123456789ABCDEF" {
			return fmt.Errorf("session_key must be changed from its default in production")
		}
	}

	return nil
}
