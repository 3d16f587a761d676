// internal/app/features/properties/routes.go
package properties

import (
	"github.com/go-chi/chi/v5"

	"github.com/dwellhub/dwellhub/internal/app/system/auth"
)

// PublicRoutes mounts the visitor-facing property detail pages
// (typically at "/properties").
func PublicRoutes(h *PublicHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.ServeDetail)
	return r
}

// CategoryRoutes mounts the category browsing pages
// (typically at "/categories").
func CategoryRoutes(h *PublicHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{name}", h.ServeCategory)
	return r
}

// AdminRoutes mounts the back-office property routes under whatever base
// path the caller chooses (typically "/admin/properties" from bootstrap).
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		// Admin-only feature; require a signed-in admin.
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		// LIST
		pr.Get("/", h.ServeList)

		// CREATE
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		// EDIT
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)

		// DELETE (confirmation gate, then confirm or cancel)
		pr.Get("/{id}/delete", h.ServeDelete)
		pr.Post("/{id}/delete", h.HandleDelete)
		pr.Post("/{id}/delete/cancel", h.HandleCancelDelete)
	})

	return r
}
