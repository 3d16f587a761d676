package login

import "github.com/go-chi/chi/v5"

// Routes mounts the login routes (typically at "/admin/login").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)
	return r
}
