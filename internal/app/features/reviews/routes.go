package reviews

import (
	"github.com/go-chi/chi/v5"

	"github.com/dwellhub/dwellhub/internal/app/system/auth"
)

// Routes mounts the admin review routes (typically at "/admin/reviews").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/approve", h.HandleApprove)
		pr.Get("/{id}/delete", h.ServeDelete)
		pr.Post("/{id}/delete", h.HandleDelete)
		pr.Post("/{id}/delete/cancel", h.HandleCancelDelete)
	})

	return r
}
