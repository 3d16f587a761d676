package logout

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the logout route (typically at "/admin/logout"). Signing out an
// anonymous visitor is harmless, so no auth gate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogout)
	return r
}
