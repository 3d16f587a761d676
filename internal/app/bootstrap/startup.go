// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dwellhub/dwellhub/internal/app/resources"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
)

// Startup runs one-time application initialization after the backend client
// is built, but before the HTTP handler is. It loads shared templates,
// brands the site, and applies any timeout overrides from the environment.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Configure(appCfg.SiteName)

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied from environment", zap.Int("count", n))
	}
	return nil
}
