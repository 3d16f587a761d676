// internal/app/features/properties/handler.go
package properties

import (
	"context"

	"go.uber.org/zap"

	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

type propertyLister interface {
	List(ctx context.Context) ([]models.Property, error)
}

type reviewLister interface {
	List(ctx context.Context) ([]models.Review, error)
}

type locationLister interface {
	List(ctx context.Context) ([]models.Location, error)
}

type typeLister interface {
	List(ctx context.Context) ([]models.PropertyType, error)
}

// PublicHandler owns the visitor-facing property pages: the detail page
// and category browsing.
type PublicHandler struct {
	Properties propertyLister
	Reviews    reviewLister
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// AdminHandler owns the back-office property screens (list, new, edit,
// delete). All state flows through the shared controller so in-flight
// guards and id reconciliation behave identically across resources.
type AdminHandler struct {
	Ctrl      *resourcectl.Controller[models.Property]
	Locations locationLister
	Types     typeLister
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewPublicHandler constructs the public property handler.
func NewPublicHandler(props propertyLister, reviews reviewLister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{
		Properties: props,
		Reviews:    reviews,
		Log:        logger,
		ErrLog:     errLog,
	}
}

// NewAdminHandler constructs the admin property handler around its
// controller.
func NewAdminHandler(ctrl *resourcectl.Controller[models.Property], locs locationLister, types typeLister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Ctrl:      ctrl,
		Locations: locs,
		Types:     types,
		Log:       logger,
		ErrLog:    errLog,
	}
}
