// Package reviews is the back-office moderation screen for visitor reviews.
// Reviews arrive unapproved; admins approve them (which makes them visible
// on the public property page), revoke approval, or delete them.
package reviews

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dwellhub/dwellhub/internal/app/api"
	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
	"github.com/dwellhub/dwellhub/internal/domain/models"
)

type propertyLister interface {
	List(ctx context.Context) ([]models.Property, error)
}

// Handler owns the admin review screens.
type Handler struct {
	Ctrl       *resourcectl.Controller[models.Review]
	Properties propertyLister
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(ctrl *resourcectl.Controller[models.Review], props propertyLister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Ctrl: ctrl, Properties: props, Log: logger, ErrLog: errLog}
}

// reviewVM pairs a review with the title of the property it belongs to.
type reviewVM struct {
	models.Review
	PropertyTitle string
}

type listData struct {
	viewdata.BaseVM
	Items     []reviewVM
	LoadError string
}

type deleteData struct {
	viewdata.BaseVM
	Review        models.Review
	PropertyTitle string
	Error         string
}

// ServeList shows every review, pending first. Property titles are a
// nicety; when the property list is unavailable the raw IDs still render.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	loadErr := h.Ctrl.Load(ctx)
	items := h.Ctrl.Items()
	if loadErr != nil && len(items) == 0 {
		h.ErrLog.LogServerError(w, r, "list reviews failed", loadErr,
			"Could not load reviews.", "/admin/reviews")
		return
	}

	titles := h.propertyTitles(ctx)
	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Reviews", "/admin/reviews"),
		Items:  SortPending(buildVMs(items, titles)),
	}
	if loadErr != nil {
		data.LoadError = api.UserMessage(loadErr)
	}
	templates.Render(w, r, "reviews_list", data)
}

// HandleApprove flips the approved flag on a single review.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load reviews for approve failed", err,
			"Could not load this review.", "/admin/reviews")
		return
	}
	if err := h.Ctrl.BeginEdit(id); err != nil {
		uierrors.RenderNotFound(w, r, "Review not found.", "/admin/reviews")
		return
	}
	draft, _ := h.Ctrl.Draft()
	draft.Approved = !draft.Approved
	h.Ctrl.SetDraft(draft)

	if err := h.Ctrl.SubmitDraft(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "approve review failed", err,
			api.UserMessage(err), "/admin/reviews")
		return
	}
	http.Redirect(w, r, "/admin/reviews", http.StatusSeeOther)
}

func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load reviews for delete failed", err,
			"Could not load this review.", "/admin/reviews")
		return
	}
	if err := h.Ctrl.RequestDelete(id); err != nil {
		uierrors.RenderNotFound(w, r, "Review not found.", "/admin/reviews")
		return
	}
	rv, _ := h.Ctrl.PendingDelete()
	templates.Render(w, r, "review_delete", deleteData{
		BaseVM:        viewdata.NewBaseVM(r, "Delete review", "/admin/reviews"),
		Review:        rv,
		PropertyTitle: h.propertyTitles(ctx)[rv.PropertyID],
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
			h.ErrLog.LogServerError(w, r, "load reviews for delete failed", err,
				"Could not load this review.", "/admin/reviews")
			return
		}
		if err := h.Ctrl.RequestDelete(id); err != nil {
			uierrors.RenderNotFound(w, r, "Review not found.", "/admin/reviews")
			return
		}
	}

	err := h.Ctrl.ConfirmDelete(ctx)
	if err == nil || errors.Is(err, resourcectl.ErrNoPendingDelete) {
		http.Redirect(w, r, "/admin/reviews", http.StatusSeeOther)
		return
	}

	rv, ok := h.Ctrl.Get(id)
	if !ok {
		uierrors.RenderNotFound(w, r, "Review not found.", "/admin/reviews")
		return
	}
	templates.Render(w, r, "review_delete", deleteData{
		BaseVM:        viewdata.NewBaseVM(r, "Delete review", "/admin/reviews"),
		Review:        rv,
		PropertyTitle: h.propertyTitles(ctx)[rv.PropertyID],
		Error:         api.UserMessage(err),
	})
}

func (h *Handler) HandleCancelDelete(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.CancelDelete()
	http.Redirect(w, r, "/admin/reviews", http.StatusSeeOther)
}

func (h *Handler) ensureLoaded(ctx context.Context) error {
	if len(h.Ctrl.Items()) > 0 {
		return nil
	}
	return h.Ctrl.Load(ctx)
}

func (h *Handler) propertyTitles(ctx context.Context) map[string]string {
	if h.Properties == nil {
		return nil
	}
	props, err := h.Properties.List(ctx)
	if err != nil {
		h.Log.Warn("property titles unavailable for reviews", zap.Error(err))
		return nil
	}
	titles := make(map[string]string, len(props))
	for _, p := range props {
		titles[p.ID] = p.Title
	}
	return titles
}

func buildVMs(items []models.Review, titles map[string]string) []reviewVM {
	vms := make([]reviewVM, 0, len(items))
	for _, rv := range items {
		vm := reviewVM{Review: rv, PropertyTitle: titles[rv.PropertyID]}
		if vm.PropertyTitle == "" {
			vm.PropertyTitle = rv.PropertyID
		}
		vms = append(vms, vm)
	}
	return vms
}

// SortPending orders unapproved reviews ahead of approved ones without
// disturbing the backend order within each group.
func SortPending(vms []reviewVM) []reviewVM {
	out := make([]reviewVM, 0, len(vms))
	for _, vm := range vms {
		if !vm.Approved {
			out = append(out, vm)
		}
	}
	for _, vm := range vms {
		if vm.Approved {
			out = append(out, vm)
		}
	}
	return out
}
