package propertytypes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dwellhub/dwellhub/internal/app/system/auth"
)

// Routes mounts the admin property-type routes
// (typically at "/admin/property-types").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Get("/{id}/delete", h.ServeDelete)
		pr.Post("/{id}/delete", h.HandleDelete)
		pr.Post("/{id}/delete/cancel", h.HandleCancelDelete)
	})

	return r
}
