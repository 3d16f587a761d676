// internal/app/bootstrap/apideps.go
package bootstrap

import (
	"github.com/dwellhub/dwellhub/internal/app/api"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// APIDeps holds the listing-backend client, the typed collections, and the
// admin controllers built on top of them. Constructed once in
// ConnectBackend and threaded through the remaining lifecycle hooks.
type APIDeps struct {
	Backend *api.Client

	Properties    *api.Collection[models.Property]
	Locations     *api.Collection[models.Location]
	PropertyTypes *api.Collection[models.PropertyType]
	Statistics    *api.Collection[models.Statistic]
	Testimonials  *api.Collection[models.Testimonial]
	Reviews       *api.Collection[models.Review]

	PropertyCtrl     *resourcectl.Controller[models.Property]
	LocationCtrl     *resourcectl.Controller[models.Location]
	PropertyTypeCtrl *resourcectl.Controller[models.PropertyType]
	StatisticCtrl    *resourcectl.Controller[models.Statistic]
	TestimonialCtrl  *resourcectl.Controller[models.Testimonial]
	ReviewCtrl       *resourcectl.Controller[models.Review]
}
