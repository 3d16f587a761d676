// internal/app/features/properties/admindelete.go
package properties

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	"github.com/dwellhub/dwellhub/internal/app/api"
	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/app/system/timeouts"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
)

// ServeDelete shows the delete confirmation page. This only marks the
// pending delete; nothing hits the network until the confirmation POST.
// GET /admin/properties/{id}/delete
func (h *AdminHandler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.ensureLoaded(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "load properties for delete failed", err,
			"Could not load this property.", "/admin/properties")
		return
	}

	if err := h.Ctrl.RequestDelete(id); err != nil {
		uierrors.RenderNotFound(w, r, "Property not found.", "/admin/properties")
		return
	}

	prop, _ := h.Ctrl.PendingDelete()
	data := deleteData{
		BaseVM:   viewdata.NewBaseVM(r, "Delete property", "/admin/properties"),
		Property: prop,
	}
	templates.Render(w, r, "property_delete", data)
}

// HandleDelete performs the confirmed delete. A conflict (the backend
// refusing because of references) re-renders the confirmation page with
// the server's reason; the row stays visible.
// POST /admin/properties/{id}/delete
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Re-arm unless the pending delete names this exact id. Direct POSTs,
	// expired confirmations, and a second tab confirming a different row
	// all land here; confirming must never delete another pending row.
	if pending, ok := h.Ctrl.PendingDelete(); !ok || pending.ID != id {
		if err := h.ensureLoaded(ctx); err != nil {
			h.ErrLog.LogServerError(w, r, "load properties for delete failed", err,
				"Could not load this property.", "/admin/properties")
			return
		}
		if err := h.Ctrl.RequestDelete(id); err != nil {
			uierrors.RenderNotFound(w, r, "Property not found.", "/admin/properties")
			return
		}
	}

	err := h.Ctrl.ConfirmDelete(ctx)
	if err == nil {
		http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
		return
	}
	if errors.Is(err, resourcectl.ErrNoPendingDelete) {
		http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
		return
	}

	prop, ok := h.Ctrl.Get(id)
	if !ok {
		uierrors.RenderNotFound(w, r, "Property not found.", "/admin/properties")
		return
	}
	data := deleteData{
		BaseVM:   viewdata.NewBaseVM(r, "Delete property", "/admin/properties"),
		Property: prop,
		Error:    api.UserMessage(err),
	}
	templates.Render(w, r, "property_delete", data)
}

// HandleCancelDelete clears the pending delete and returns to the list.
// POST /admin/properties/{id}/delete/cancel
func (h *AdminHandler) HandleCancelDelete(w http.ResponseWriter, r *http.Request) {
	h.Ctrl.CancelDelete()
	http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
}
