// internal/app/bootstrap/backend.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dwellhub/dwellhub/internal/app/api"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// ConnectBackend builds the listing-backend client, its typed collections,
// and the admin controllers. The backend being down is not fatal here: the
// UI degrades per page, and /health reports the outage.
func ConnectBackend(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (APIDeps, error) {
	client := api.New(appCfg.APIBaseURL, appCfg.APIKey, appCfg.APITimeout, logger)

	deps := APIDeps{
		Backend: client,

		// Base paths follow the listing backend's singular resource naming.
		Properties:    api.NewCollection[models.Property](client, "/property"),
		Locations:     api.NewCollection[models.Location](client, "/location"),
		PropertyTypes: api.NewCollection[models.PropertyType](client, "/propertytype"),
		Statistics:    api.NewCollection[models.Statistic](client, "/statistic"),
		Testimonials:  api.NewCollection[models.Testimonial](client, "/testimonial"),
		Reviews:       api.NewCollection[models.Review](client, "/review"),
	}

	deps.PropertyCtrl = resourcectl.New[models.Property]("properties", deps.Properties, resourcectl.InputValidator[models.Property](), logger)
	deps.LocationCtrl = resourcectl.New[models.Location]("locations", deps.Locations, resourcectl.InputValidator[models.Location](), logger)
	deps.PropertyTypeCtrl = resourcectl.New[models.PropertyType]("property-types", deps.PropertyTypes, resourcectl.InputValidator[models.PropertyType](), logger)
	deps.StatisticCtrl = resourcectl.New[models.Statistic]("statistics", deps.Statistics, resourcectl.InputValidator[models.Statistic](), logger)
	deps.TestimonialCtrl = resourcectl.New[models.Testimonial]("testimonials", deps.Testimonials, resourcectl.InputValidator[models.Testimonial](), logger)
	deps.ReviewCtrl = resourcectl.New[models.Review]("reviews", deps.Reviews, resourcectl.InputValidator[models.Review](), logger)

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("listing backend unreachable at startup; continuing",
			zap.String("api_base_url", appCfg.APIBaseURL),
			zap.Error(err))
	} else {
		logger.Info("listing backend reachable", zap.String("api_base_url", appCfg.APIBaseURL))
	}

	return deps, nil
}

// EnsureSchema is a no-op: the listing backend owns its own storage schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps APIDeps, logger *zap.Logger) error {
	return nil
}
