// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown releases the admin controllers so in-flight backend responses
// are discarded instead of applied. The HTTP client itself has nothing to
// close.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) error {
	for _, c := range []interface{ Close() }{
		deps.PropertyCtrl, deps.LocationCtrl, deps.PropertyTypeCtrl,
		deps.StatisticCtrl, deps.TestimonialCtrl, deps.ReviewCtrl,
	} {
		if c != nil {
			c.Close()
		}
	}
	logger.Info("dwellhub shut down")
	return nil
}
