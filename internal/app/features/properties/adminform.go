// internal/app/features/properties/adminform.go
package properties

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dwellhub/dwellhub/internal/app/api"
	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/formutil"
	"github.com/dwellhub/dwellhub/internal/app/system/navigation"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| CREATE                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeNew renders an empty property form.
// GET /admin/properties/new
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.BeginCreate()
	draft, _ := h.Ctrl.Draft()
	h.renderForm(w, r, draft, "", "")
}

// HandleCreate submits a new property.
// POST /admin/properties
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/properties")
		return
	}

	draft, parseErr := parsePropertyForm(r)
	h.Ctrl.BeginCreate()
	h.Ctrl.SetDraft(draft)
	if parseErr != nil {
		h.renderForm(w, r, draft, "", parseErr.Error())
		return
	}

	h.submitDraft(w, r, draft, "")
}

/*─────────────────────────────────────────────────────────────────────────────*
| EDIT                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeEdit renders the form pre-filled with the property being edited.
// GET /admin/properties/{id}/edit
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load properties for edit failed", err,
			"Could not load this property.", "/admin/properties")
		return
	}

	if err := h.Ctrl.BeginEdit(id); err != nil {
		uierrors.RenderNotFound(w, r, "Property not found.", "/admin/properties")
		return
	}

	draft, _ := h.Ctrl.Draft()
	h.renderForm(w, r, draft, id, "")
}

// HandleEdit submits changes to an existing property.
// POST /admin/properties/{id}/edit
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/properties")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load properties for edit failed", err,
			"Could not load this property.", "/admin/properties")
		return
	}

	// Re-enter edit mode; the controller may have been switched to another
	// record between the GET and the POST.
	if _, editing := h.Ctrl.Draft(); editing != id {
		if err := h.Ctrl.BeginEdit(id); err != nil {
			uierrors.RenderNotFound(w, r, "Property not found.", "/admin/properties")
			return
		}
	}

	draft, parseErr := parsePropertyForm(r)
	h.Ctrl.SetDraft(draft)
	if parseErr != nil {
		h.renderForm(w, r, draft, id, parseErr.Error())
		return
	}

	h.submitDraft(w, r, draft, id)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Shared submit & render                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// submitDraft runs the controller submit and maps its error taxonomy onto
// the form: validation and conflict reasons re-render the form with the
// draft intact, transport failures get the retry message.
func (h *AdminHandler) submitDraft(w http.ResponseWriter, r *http.Request, draft models.Property, id string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Ctrl.SubmitDraft(ctx)
	if err == nil {
		http.Redirect(w, r, navigation.SafeBackURL(r, navigation.PropertiesBackURL), http.StatusSeeOther)
		return
	}

	switch {
	case resourcectl.IsValidation(err):
		h.renderForm(w, r, draft, id, err.Error())
	case errors.Is(err, resourcectl.ErrBusy):
		h.renderForm(w, r, draft, id, "Another change is still being saved. Please retry in a moment.")
	default:
		h.Log.Warn("property submit failed", zap.String("id", id), zap.Error(err))
		h.renderForm(w, r, draft, id, api.UserMessage(err))
	}
}

// renderForm renders the shared new/edit form. Dropdowns degrade to empty
// lists when their fetch fails; the error banner still shows.
func (h *AdminHandler) renderForm(w http.ResponseWriter, r *http.Request, draft models.Property, id, errMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	title := "New property"
	if id != "" {
		title = "Edit property"
	}

	data := formData{
		ID:    id,
		Draft: draft,
	}
	formutil.SetBase(&data.Base, r, title, "/admin/properties")
	if errMsg != "" {
		data.SetError(errMsg)
	}

	if locs, err := h.Locations.List(ctx); err != nil {
		h.Log.Warn("list locations for form failed", zap.Error(err))
	} else {
		data.LocationOptions = locs
	}
	if types, err := h.Types.List(ctx); err != nil {
		h.Log.Warn("list property types for form failed", zap.Error(err))
	} else {
		data.TypeOptions = types
	}

	templates.Render(w, r, "property_form", data)
}

// parsePropertyForm coerces the posted fields into a Property. Numeric
// fields accept blanks as zero; anything non-numeric is a user error, not
// a silent zero.
func parsePropertyForm(r *http.Request) (models.Property, error) {
	p := models.Property{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Location:    strings.TrimSpace(r.FormValue("location")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Address:     strings.TrimSpace(r.FormValue("address")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		Featured:    r.FormValue("featured") != "",
	}

	var err error
	if p.Price, err = parseFloatField(r.FormValue("price"), "Price"); err != nil {
		return p, err
	}
	if p.Bedrooms, err = parseIntField(r.FormValue("bedrooms"), "Bedrooms"); err != nil {
		return p, err
	}
	if p.Bathrooms, err = parseIntField(r.FormValue("bathrooms"), "Bathrooms"); err != nil {
		return p, err
	}
	if p.AreaSqft, err = parseIntField(r.FormValue("area_sqft"), "Area"); err != nil {
		return p, err
	}
	return p, nil
}

func parseFloatField(raw, label string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative number.", label)
	}
	return v, nil
}

func parseIntField(raw, label string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative whole number.", label)
	}
	return v, nil
}
