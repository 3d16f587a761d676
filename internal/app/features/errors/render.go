// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderUnauthorized shows a friendly “sign in required” page.
// If backURL is empty, it will default to /admin/login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/admin/login"
	}
	data := newPageData(r, "Sign in required", "Please sign in to continue.", backURL)
	templates.Render(w, r, "error_forbidden", data)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	data := newPageData(r, "Access denied", msg, backURL)
	templates.Render(w, r, "error_forbidden", data)
}

// RenderNotFound shows a friendly "not found" page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	w.WriteHeader(http.StatusNotFound)
	data := newPageData(r, "Not found", msg, backURL)
	templates.Render(w, r, "error_notfound", data)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	w.WriteHeader(http.StatusInternalServerError)
	data := newPageData(r, "Something went wrong", msg, backURL)
	templates.Render(w, r, "error_server", data)
}

// RenderUnavailable shows the "backend unreachable" page used when the
// listing service cannot be contacted. The operation can simply be retried.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	if msg == "" {
		msg = "The listing service is temporarily unavailable. Please try again."
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	data := newPageData(r, "Service unavailable", msg, backURL)
	templates.Render(w, r, "error_server", data)
}
