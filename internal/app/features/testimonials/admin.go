// Package testimonials is the back-office CRUD for the quotes shown on
// the public home page.
package testimonials

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
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// Handler owns the admin testimonial screens.
type Handler struct {
	Ctrl   *resourcectl.Controller[models.Testimonial]
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(ctrl *resourcectl.Controller[models.Testimonial], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Ctrl: ctrl, Log: logger, ErrLog: errLog}
}

type listData struct {
	viewdata.BaseVM
	Items     []models.Testimonial
	LoadError string
}

type formData struct {
	formutil.Base
	ID    string
	Draft models.Testimonial
}

type deleteData struct {
	viewdata.BaseVM
	Testimonial models.Testimonial
	Error       string
}

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	loadErr := h.Ctrl.Load(ctx)
	items := h.Ctrl.Items()
	if loadErr != nil && len(items) == 0 {
		h.ErrLog.LogServerError(w, r, "list testimonials failed", loadErr,
			"Could not load testimonials.", "/admin/testimonials")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Testimonials", "/admin/testimonials"),
		Items:  items,
	}
	if loadErr != nil {
		data.LoadError = api.UserMessage(loadErr)
	}
	templates.Render(w, r, "testimonials_list", data)
}

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.BeginCreate()
	draft, _ := h.Ctrl.Draft()
	draft.Rating = models.MaxRating
	h.Ctrl.SetDraft(draft)
	h.renderForm(w, r, draft, "", "")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/testimonials")
		return
	}
	draft, parseErr := parseTestimonialForm(r)
	h.Ctrl.BeginCreate()
	h.Ctrl.SetDraft(draft)
	if parseErr != nil {
		h.renderForm(w, r, draft, "", parseErr.Error())
		return
	}
	h.submitDraft(w, r, "")
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load testimonials for edit failed", err,
			"Could not load this testimonial.", "/admin/testimonials")
		return
	}
	if err := h.Ctrl.BeginEdit(id); err != nil {
		uierrors.RenderNotFound(w, r, "Testimonial not found.", "/admin/testimonials")
		return
	}
	draft, _ := h.Ctrl.Draft()
	h.renderForm(w, r, draft, id, "")
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/testimonials")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load testimonials for edit failed", err,
			"Could not load this testimonial.", "/admin/testimonials")
		return
	}
	if _, editing := h.Ctrl.Draft(); editing != id {
		if err := h.Ctrl.BeginEdit(id); err != nil {
			uierrors.RenderNotFound(w, r, "Testimonial not found.", "/admin/testimonials")
			return
		}
	}
	draft, parseErr := parseTestimonialForm(r)
	h.Ctrl.SetDraft(draft)
	if parseErr != nil {
		h.renderForm(w, r, draft, id, parseErr.Error())
		return
	}
	h.submitDraft(w, r, id)
}

func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load testimonials for delete failed", err,
			"Could not load this testimonial.", "/admin/testimonials")
		return
	}
	if err := h.Ctrl.RequestDelete(id); err != nil {
		uierrors.RenderNotFound(w, r, "Testimonial not found.", "/admin/testimonials")
		return
	}
	tm, _ := h.Ctrl.PendingDelete()
	templates.Render(w, r, "testimonial_delete", deleteData{
		BaseVM:      viewdata.NewBaseVM(r, "Delete testimonial", "/admin/testimonials"),
		Testimonial: tm,
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
			h.ErrLog.LogServerError(w, r, "load testimonials for delete failed", err,
				"Could not load this testimonial.", "/admin/testimonials")
			return
		}
		if err := h.Ctrl.RequestDelete(id); err != nil {
			uierrors.RenderNotFound(w, r, "Testimonial not found.", "/admin/testimonials")
			return
		}
	}

	err := h.Ctrl.ConfirmDelete(ctx)
	if err == nil || errors.Is(err, resourcectl.ErrNoPendingDelete) {
		http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
		return
	}

	tm, ok := h.Ctrl.Get(id)
	if !ok {
		uierrors.RenderNotFound(w, r, "Testimonial not found.", "/admin/testimonials")
		return
	}
	templates.Render(w, r, "testimonial_delete", deleteData{
		BaseVM:      viewdata.NewBaseVM(r, "Delete testimonial", "/admin/testimonials"),
		Testimonial: tm,
		Error:       api.UserMessage(err),
	})
}

func (h *Handler) HandleCancelDelete(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.CancelDelete()
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
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
		http.Redirect(w, r, navigation.SafeBackURL(r, navigation.TestimonialsBackURL), http.StatusSeeOther)
		return
	}

	switch {
	case resourcectl.IsValidation(err):
		h.renderForm(w, r, draft, id, err.Error())
	case errors.Is(err, resourcectl.ErrBusy):
		h.renderForm(w, r, draft, id, "Another change is still being saved. Please retry in a moment.")
	default:
		h.Log.Warn("testimonial submit failed", zap.String("id", id), zap.Error(err))
		h.renderForm(w, r, draft, id, api.UserMessage(err))
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, draft models.Testimonial, id, errMsg string) {
	title := "New testimonial"
	if id != "" {
		title = "Edit testimonial"
	}
	data := formData{ID: id, Draft: draft}
	formutil.SetBase(&data.Base, r, title, "/admin/testimonials")
	if errMsg != "" {
		data.SetError(errMsg)
	}
	templates.Render(w, r, "testimonial_form", data)
}

// parseTestimonialForm reads the form fields. A non-numeric rating is a
// parse error; an out-of-range numeric rating is clamped, the server stays
// the validation authority.
func parseTestimonialForm(r *http.Request) (models.Testimonial, error) {
	tm := models.Testimonial{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Role:     strings.TrimSpace(r.FormValue("role")),
		Content:  strings.TrimSpace(r.FormValue("content")),
		Initials: strings.TrimSpace(r.FormValue("initials")),
		Rating:   models.MaxRating,
	}
	raw := strings.TrimSpace(r.FormValue("rating"))
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return tm, fmt.Errorf("Rating must be a number from %d to %d.", models.MinRating, models.MaxRating)
		}
		tm.Rating = models.ClampRating(n)
	}
	return tm, nil
}
