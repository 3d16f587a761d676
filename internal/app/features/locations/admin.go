// Package locations is the back-office CRUD for area/neighborhood records.
// Properties reference locations by title; the backend refuses to delete a
// location still in use, which surfaces here as a conflict on the
// confirmation page.
package locations

import (
	"context"
	"errors"
	"net/http"
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
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// Handler owns the admin location screens.
type Handler struct {
	Ctrl   *resourcectl.Controller[models.Location]
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(ctrl *resourcectl.Controller[models.Location], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Ctrl: ctrl, Log: logger, ErrLog: errLog}
}

type listData struct {
	viewdata.BaseVM
	Items     []models.Location
	LoadError string
}

type formData struct {
	formutil.Base
	ID    string
	Draft models.Location
}

type deleteData struct {
	viewdata.BaseVM
	Location models.Location
	Error    string
}

// ServeList displays all locations; stale rows plus a banner beat a blank
// page when the refresh fails.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	loadErr := h.Ctrl.Load(ctx)
	items := h.Ctrl.Items()
	if loadErr != nil && len(items) == 0 {
		h.ErrLog.LogServerError(w, r, "list locations failed", loadErr,
			"Could not load locations.", "/admin/locations")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Locations", "/admin/locations"),
		Items:  items,
	}
	if loadErr != nil {
		data.LoadError = api.UserMessage(loadErr)
	}
	templates.Render(w, r, "locations_list", data)
}

// ServeNew renders an empty location form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.BeginCreate()
	draft, _ := h.Ctrl.Draft()
	h.renderForm(w, r, draft, "", "")
}

// HandleCreate submits a new location.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/locations")
		return
	}
	h.Ctrl.BeginCreate()
	h.Ctrl.SetDraft(parseLocationForm(r))
	h.submitDraft(w, r, "")
}

// ServeEdit renders the form pre-filled with the location being edited.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load locations for edit failed", err,
			"Could not load this location.", "/admin/locations")
		return
	}
	if err := h.Ctrl.BeginEdit(id); err != nil {
		uierrors.RenderNotFound(w, r, "Location not found.", "/admin/locations")
		return
	}
	draft, _ := h.Ctrl.Draft()
	h.renderForm(w, r, draft, id, "")
}

// HandleEdit submits changes to an existing location.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/locations")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load locations for edit failed", err,
			"Could not load this location.", "/admin/locations")
		return
	}
	if _, editing := h.Ctrl.Draft(); editing != id {
		if err := h.Ctrl.BeginEdit(id); err != nil {
			uierrors.RenderNotFound(w, r, "Location not found.", "/admin/locations")
			return
		}
	}
	h.Ctrl.SetDraft(parseLocationForm(r))
	h.submitDraft(w, r, id)
}

// ServeDelete shows the delete confirmation page.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load locations for delete failed", err,
			"Could not load this location.", "/admin/locations")
		return
	}
	if err := h.Ctrl.RequestDelete(id); err != nil {
		uierrors.RenderNotFound(w, r, "Location not found.", "/admin/locations")
		return
	}
	loc, _ := h.Ctrl.PendingDelete()
	templates.Render(w, r, "location_delete", deleteData{
		BaseVM:   viewdata.NewBaseVM(r, "Delete location", "/admin/locations"),
		Location: loc,
	})
}

// HandleDelete performs the confirmed delete. A conflict — the location is
// still referenced by properties — re-renders the confirmation page with
// the server's reason verbatim.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Re-arm unless the pending delete names this exact id: a direct POST,
	// an expired confirmation, or a second tab confirming a different row
	// must never delete whatever happened to be pending.
	if pending, ok := h.Ctrl.PendingDelete(); !ok || pending.ID != id {
		if err := h.ensureLoaded(ctx); err != nil {
			h.ErrLog.LogServerError(w, r, "load locations for delete failed", err,
				"Could not load this location.", "/admin/locations")
			return
		}
		if err := h.Ctrl.RequestDelete(id); err != nil {
			uierrors.RenderNotFound(w, r, "Location not found.", "/admin/locations")
			return
		}
	}

	err := h.Ctrl.ConfirmDelete(ctx)
	if err == nil || errors.Is(err, resourcectl.ErrNoPendingDelete) {
		http.Redirect(w, r, "/admin/locations", http.StatusSeeOther)
		return
	}

	loc, ok := h.Ctrl.Get(id)
	if !ok {
		uierrors.RenderNotFound(w, r, "Location not found.", "/admin/locations")
		return
	}
	templates.Render(w, r, "location_delete", deleteData{
		BaseVM:   viewdata.NewBaseVM(r, "Delete location", "/admin/locations"),
		Location: loc,
		Error:    api.UserMessage(err),
	})
}

// HandleCancelDelete clears the pending delete and returns to the list.
func (h *Handler) HandleCancelDelete(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.CancelDelete()
	http.Redirect(w, r, "/admin/locations", http.StatusSeeOther)
}

func (h *Handler) ensureLoaded(ctx context.Context) error {
	if len(h.Ctrl.Items()) > 0 {
		return nil
	}
	return h.Ctrl.Load(ctx)
}

func (h *Handler) submitDraft(w http.ResponseWriter, r *http.Request, id string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	draft, _ := h.Ctrl.Draft()
	err := h.Ctrl.SubmitDraft(ctx)
	if err == nil {
		http.Redirect(w, r, navigation.SafeBackURL(r, navigation.LocationsBackURL), http.StatusSeeOther)
		return
	}

	switch {
	case resourcectl.IsValidation(err):
		h.renderForm(w, r, draft, id, err.Error())
	case errors.Is(err, resourcectl.ErrBusy):
		h.renderForm(w, r, draft, id, "Another change is still being saved. Please retry in a moment.")
	default:
		h.Log.Warn("location submit failed", zap.String("id", id), zap.Error(err))
		h.renderForm(w, r, draft, id, api.UserMessage(err))
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, draft models.Location, id, errMsg string) {
	title := "New location"
	if id != "" {
		title = "Edit location"
	}
	data := formData{ID: id, Draft: draft}
	formutil.SetBase(&data.Base, r, title, "/admin/locations")
	if errMsg != "" {
		data.SetError(errMsg)
	}
	templates.Render(w, r, "location_form", data)
}

func parseLocationForm(r *http.Request) models.Location {
	return models.Location{
		Title:             strings.TrimSpace(r.FormValue("title")),
		Description:       strings.TrimSpace(r.FormValue("description")),
		GoogleMapURL:      strings.TrimSpace(r.FormValue("google_map_url")),
		ImportantLocation: r.FormValue("important_location") != "",
	}
}
