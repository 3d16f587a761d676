// Package propertytypes is the back-office CRUD for listing categories.
// Deleting a type still referenced by properties is refused by the backend
// and surfaces as a conflict.
package propertytypes

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

// Handler owns the admin property-type screens.
type Handler struct {
	Ctrl   *resourcectl.Controller[models.PropertyType]
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(ctrl *resourcectl.Controller[models.PropertyType], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Ctrl: ctrl, Log: logger, ErrLog: errLog}
}

type listData struct {
	viewdata.BaseVM
	Items     []models.PropertyType
	LoadError string
}

type formData struct {
	formutil.Base
	ID    string
	Draft models.PropertyType
}

type deleteData struct {
	viewdata.BaseVM
	PropertyType models.PropertyType
	Error        string
}

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	loadErr := h.Ctrl.Load(ctx)
	items := h.Ctrl.Items()
	if loadErr != nil && len(items) == 0 {
		h.ErrLog.LogServerError(w, r, "list property types failed", loadErr,
			"Could not load property types.", "/admin/property-types")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Property types", "/admin/property-types"),
		Items:  items,
	}
	if loadErr != nil {
		data.LoadError = api.UserMessage(loadErr)
	}
	templates.Render(w, r, "propertytypes_list", data)
}

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.BeginCreate()
	draft, _ := h.Ctrl.Draft()
	h.renderForm(w, r, draft, "", "")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/property-types")
		return
	}
	h.Ctrl.BeginCreate()
	h.Ctrl.SetDraft(parseTypeForm(r))
	h.submitDraft(w, r, "")
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load property types for edit failed", err,
			"Could not load this property type.", "/admin/property-types")
		return
	}
	if err := h.Ctrl.BeginEdit(id); err != nil {
		uierrors.RenderNotFound(w, r, "Property type not found.", "/admin/property-types")
		return
	}
	draft, _ := h.Ctrl.Draft()
	h.renderForm(w, r, draft, id, "")
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/property-types")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load property types for edit failed", err,
			"Could not load this property type.", "/admin/property-types")
		return
	}
	if _, editing := h.Ctrl.Draft(); editing != id {
		if err := h.Ctrl.BeginEdit(id); err != nil {
			uierrors.RenderNotFound(w, r, "Property type not found.", "/admin/property-types")
			return
		}
	}
	h.Ctrl.SetDraft(parseTypeForm(r))
	h.submitDraft(w, r, id)
}

func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load property types for delete failed", err,
			"Could not load this property type.", "/admin/property-types")
		return
	}
	if err := h.Ctrl.RequestDelete(id); err != nil {
		uierrors.RenderNotFound(w, r, "Property type not found.", "/admin/property-types")
		return
	}
	pt, _ := h.Ctrl.PendingDelete()
	templates.Render(w, r, "propertytype_delete", deleteData{
		BaseVM:       viewdata.NewBaseVM(r, "Delete property type", "/admin/property-types"),
		PropertyType: pt,
	})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Re-arm unless the pending delete names this exact id; confirming one
	// row must never delete a different pending one.
	if pending, ok := h.Ctrl.PendingDelete(); !ok || pending.ID != id {
		if err := h.ensureLoaded(ctx); err != nil {
			h.ErrLog.LogServerError(w, r, "load property types for delete failed", err,
				"Could not load this property type.", "/admin/property-types")
			return
		}
		if err := h.Ctrl.RequestDelete(id); err != nil {
			uierrors.RenderNotFound(w, r, "Property type not found.", "/admin/property-types")
			return
		}
	}

	err := h.Ctrl.ConfirmDelete(ctx)
	if err == nil || errors.Is(err, resourcectl.ErrNoPendingDelete) {
		http.Redirect(w, r, "/admin/property-types", http.StatusSeeOther)
		return
	}

	pt, ok := h.Ctrl.Get(id)
	if !ok {
		uierrors.RenderNotFound(w, r, "Property type not found.", "/admin/property-types")
		return
	}
	templates.Render(w, r, "propertytype_delete", deleteData{
		BaseVM:       viewdata.NewBaseVM(r, "Delete property type", "/admin/property-types"),
		PropertyType: pt,
		Error:        api.UserMessage(err),
	})
}

func (h *Handler) HandleCancelDelete(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.CancelDelete()
	http.Redirect(w, r, "/admin/property-types", http.StatusSeeOther)
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
		http.Redirect(w, r, navigation.SafeBackURL(r, navigation.PropertyTypesBackURL), http.StatusSeeOther)
		return
	}

	switch {
	case resourcectl.IsValidation(err):
		h.renderForm(w, r, draft, id, err.Error())
	case errors.Is(err, resourcectl.ErrBusy):
		h.renderForm(w, r, draft, id, "Another change is still being saved. Please retry in a moment.")
	default:
		h.Log.Warn("property type submit failed", zap.String("id", id), zap.Error(err))
		h.renderForm(w, r, draft, id, api.UserMessage(err))
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, draft models.PropertyType, id, errMsg string) {
	title := "New property type"
	if id != "" {
		title = "Edit property type"
	}
	data := formData{ID: id, Draft: draft}
	formutil.SetBase(&data.Base, r, title, "/admin/property-types")
	if errMsg != "" {
		data.SetError(errMsg)
	}
	templates.Render(w, r, "propertytype_form", data)
}

func parseTypeForm(r *http.Request) models.PropertyType {
	return models.PropertyType{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
}
