// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dwellhub/dwellhub/internal/app/system/auth"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	SiteName   string
	IsLoggedIn bool
	Role       string
	UserName   string
	Message    string
	BackURL    string
}

// Handler is the errors feature handler.
// No backend needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	data := newPageData(r, "Access denied",
		"You don't have permission to view this page.", "/")
	templates.Render(w, r, "error_forbidden", data)
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := newPageData(r, "Sign in required",
		"Please sign in to continue.", "/admin/login")
	templates.Render(w, r, "error_forbidden", data)
}

// NotFound renders the 404 page. Wired as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := newPageData(r, "Page not found",
		"The page you are looking for does not exist.", "/")
	templates.Render(w, r, "error_notfound", data)
}

func newPageData(r *http.Request, title, msg, backURL string) pageData {
	data := pageData{
		Title:    title,
		SiteName: viewdata.SiteName(),
		Message:  msg,
		BackURL:  backURL,
	}
	if u, ok := auth.CurrentUser(r); ok {
		data.IsLoggedIn = true
		data.Role = u.Role
		data.UserName = u.Name
	}
	return data
}
