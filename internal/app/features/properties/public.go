// internal/app/features/properties/public.go
package properties

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/htmlsanitize"
	"github.com/dwellhub/dwellhub/internal/app/system/propfilter"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /properties/{id} – detail                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDetail renders one property with its approved reviews. The backend
// exposes collections, not item reads, so the listing comes from the
// collection fetch.
func (h *PublicHandler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	props, err := h.Properties.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "property detail: list failed", err,
			"Could not load this property right now.", "/search")
		return
	}

	prop, found := findByID(props, id)
	if !found {
		uierrors.RenderNotFound(w, r, "This property does not exist or is no longer listed.", "/search")
		return
	}

	data := detailData{
		BaseVM:   viewdata.NewBaseVM(r, prop.Title, "/search"),
		Property: prop,
	}

	// Reviews are decoration; the page renders without them.
	if reviews, err := h.Reviews.List(ctx); err != nil {
		h.Log.Warn("property detail: list reviews failed", zap.Error(err))
	} else {
		for _, rv := range reviews {
			if rv.PropertyID != id || !rv.Approved {
				continue
			}
			data.Reviews = append(data.Reviews, reviewVM{
				Author:  rv.Author,
				Content: htmlsanitize.SanitizeToHTML(rv.Content),
				Rating:  models.ClampRating(rv.Rating),
			})
		}
	}

	templates.Render(w, r, "property_detail", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /categories/{name} – browse by type                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCategory lists all properties of one category (exact name match,
// same predicate as the search page).
func (h *PublicHandler) ServeCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	props, err := h.Properties.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "category page: list failed", err,
			"Could not load listings right now.", "/")
		return
	}

	results := propfilter.Filter(props, propfilter.Criteria{Category: name})

	data := categoryData{
		BaseVM:   viewdata.NewBaseVM(r, name+" properties", "/"),
		Category: name,
		Results:  results,
		Total:    len(results),
	}

	templates.Render(w, r, "property_category", data)
}

func findByID(props []models.Property, id string) (models.Property, bool) {
	for _, p := range props {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}
