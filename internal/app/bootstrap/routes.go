// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	errorsfeature "github.com/dwellhub/dwellhub/internal/app/features/errors"
	healthfeature "github.com/dwellhub/dwellhub/internal/app/features/health"
	homefeature "github.com/dwellhub/dwellhub/internal/app/features/home"
	locationsfeature "github.com/dwellhub/dwellhub/internal/app/features/locations"
	loginfeature "github.com/dwellhub/dwellhub/internal/app/features/login"
	logoutfeature "github.com/dwellhub/dwellhub/internal/app/features/logout"
	propertiesfeature "github.com/dwellhub/dwellhub/internal/app/features/properties"
	propertytypesfeature "github.com/dwellhub/dwellhub/internal/app/features/propertytypes"
	reviewsfeature "github.com/dwellhub/dwellhub/internal/app/features/reviews"
	searchfeature "github.com/dwellhub/dwellhub/internal/app/features/search"
	statisticsfeature "github.com/dwellhub/dwellhub/internal/app/features/statistics"
	testimonialsfeature "github.com/dwellhub/dwellhub/internal/app/features/testimonials"
	"github.com/dwellhub/dwellhub/internal/app/system/auth"
	"github.com/dwellhub/dwellhub/internal/app/system/limits"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client, and any
// Startup hooks have completed. It:
//  1. Creates the session manager and boots the template engine
//  2. Applies session + CSRF middleware
//  3. Mounts the public site, auth, and back-office feature routers
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Cap request bodies before any handler parses them.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Body != nil {
				req.Body = http.MaxBytesReader(w, req.Body, limits.MaxFormSize)
			}
			next.ServeHTTP(w, req)
		})
	})

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for all form posts. The key is derived from the
	// session key so operators manage one secret.
	r.Use(csrf.Protect(
		[]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Backend, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(deps.Properties, deps.Statistics, deps.Testimonials, appCfg.FeaturedLimit, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	searchHandler := searchfeature.NewHandler(deps.Properties, deps.Locations, deps.PropertyTypes, errLog, logger)
	r.Mount("/search", searchfeature.Routes(searchHandler))

	publicPropHandler := propertiesfeature.NewPublicHandler(deps.Properties, deps.Reviews, errLog, logger)
	r.Mount("/properties", propertiesfeature.PublicRoutes(publicPropHandler))
	r.Mount("/categories", propertiesfeature.CategoryRoutes(publicPropHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(sessionMgr, errLog, appCfg.AdminLoginID, appCfg.AdminPasswordHash, appCfg.AdminName, logger)
	r.Mount("/admin/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/admin/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Back office
	adminPropHandler := propertiesfeature.NewAdminHandler(deps.PropertyCtrl, deps.Locations, deps.PropertyTypes, errLog, logger)
	r.Mount("/admin/properties", propertiesfeature.AdminRoutes(adminPropHandler, sessionMgr))

	locationsHandler := locationsfeature.NewHandler(deps.LocationCtrl, errLog, logger)
	r.Mount("/admin/locations", locationsfeature.Routes(locationsHandler, sessionMgr))

	typesHandler := propertytypesfeature.NewHandler(deps.PropertyTypeCtrl, errLog, logger)
	r.Mount("/admin/property-types", propertytypesfeature.Routes(typesHandler, sessionMgr))

	statsHandler := statisticsfeature.NewHandler(deps.StatisticCtrl, errLog, logger)
	r.Mount("/admin/statistics", statisticsfeature.Routes(statsHandler, sessionMgr))

	testimonialsHandler := testimonialsfeature.NewHandler(deps.TestimonialCtrl, errLog, logger)
	r.Mount("/admin/testimonials", testimonialsfeature.Routes(testimonialsHandler, sessionMgr))

	reviewsHandler := reviewsfeature.NewHandler(deps.ReviewCtrl, deps.Properties, errLog, logger)
	r.Mount("/admin/reviews", reviewsfeature.Routes(reviewsHandler, sessionMgr))

	return r, nil
}
