// internal/app/features/properties/types.go
package properties

import (
	"html/template"

	"github.com/dwellhub/dwellhub/internal/app/system/formutil"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// ========================= PUBLIC VIEW MODELS ==============================

// reviewVM is one approved review on the public detail page.
type reviewVM struct {
	Author  string
	Content template.HTML
	Rating  int
}

// detailData is the view model for the public property detail page.
type detailData struct {
	viewdata.BaseVM

	Property models.Property
	Reviews  []reviewVM
}

// categoryData is the view model for the public category browsing page.
type categoryData struct {
	viewdata.BaseVM

	Category string
	Results  []models.Property
	Total    int
}

// ========================= ADMIN VIEW MODELS ===============================

// listData provides template data for the admin properties list.
type listData struct {
	viewdata.BaseVM

	Items []models.Property

	// LoadError carries the reason when the last fetch failed but stale
	// rows are still shown.
	LoadError string
}

// formData is the unified form view-model used by the New and Edit admin
// flows.
type formData struct {
	formutil.Base

	ID string // empty in create mode

	Draft models.Property

	// Dropdown options
	LocationOptions []models.Location
	TypeOptions     []models.PropertyType
}

// deleteData is the view model for the delete confirmation page.
type deleteData struct {
	viewdata.BaseVM

	Property models.Property

	// Error carries a failed delete's reason (e.g. a reference conflict)
	// back onto the confirmation page.
	Error string
}
