package search

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/propfilter"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

type propertyLister interface {
	List(ctx context.Context) ([]models.Property, error)
}

type locationLister interface {
	List(ctx context.Context) ([]models.Location, error)
}

type typeLister interface {
	List(ctx context.Context) ([]models.PropertyType, error)
}

// Handler serves the public search page. The criteria live entirely in the
// URL (?q=&location=&category=), so results are shareable and the back
// button restores the previous search.
type Handler struct {
	Properties propertyLister
	Locations  locationLister
	Types      typeLister
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(props propertyLister, locs locationLister, types typeLister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Properties: props,
		Locations:  locs,
		Types:      types,
		Log:        logger,
		ErrLog:     errLog,
	}
}

type searchData struct {
	viewdata.BaseVM

	Q        string
	Location string
	Category string

	Results   []models.Property
	Total     int
	Locations []models.Location
	Types     []models.PropertyType
}

// ServeSearch handles GET /search.
//
// The full collection is fetched and filtered locally; the backend exposes
// no server-side search. Filter dropdowns degrade to empty if their fetch
// fails - the results themselves still render.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	crit := CriteriaFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	props, err := h.Properties.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "search: list properties failed", err,
			"Could not load listings right now.", "/")
		return
	}

	results := propfilter.Filter(props, crit)

	data := searchData{
		BaseVM:   viewdata.NewBaseVM(r, "Search properties", "/"),
		Q:        crit.Query,
		Location: crit.Location,
		Category: crit.Category,
		Results:  results,
		Total:    len(results),
	}

	if locs, err := h.Locations.List(ctx); err != nil {
		h.Log.Warn("search: list locations failed", zap.Error(err))
	} else {
		data.Locations = locs
	}

	if types, err := h.Types.List(ctx); err != nil {
		h.Log.Warn("search: list property types failed", zap.Error(err))
	} else {
		data.Types = types
	}

	// HTMX partial refresh for live filtering.
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "search-results" {
		templates.RenderSnippet(w, "search_results", data)
		return
	}

	templates.Render(w, r, "search", data)
}

// CriteriaFromRequest reads the filter criteria out of the URL.
func CriteriaFromRequest(r *http.Request) propfilter.Criteria {
	return propfilter.Criteria{
		Query:    query.Search(r, "q"),
		Location: query.Get(r, "location"),
		Category: query.Get(r, "category"),
	}
}
