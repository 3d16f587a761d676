// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type newLocationData struct {
//		formutil.Base
//		Title       string
//		Description string
//	}
//
//	// In your handler:
//	data := newLocationData{Title: title, Description: desc}
//	formutil.SetBase(&data.Base, r, "Add Location", "/admin/locations")
//	data.SetError("Title is required.")
//	templates.Render(w, r, "location_new", data)
package formutil

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dwellhub/dwellhub/internal/app/system/auth"
	"github.com/gorilla/csrf"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	Title       string
	IsLoggedIn  bool
	Role        string
	UserName    string
	BackURL     string
	CurrentPath string
	CSRFToken   string

	// Error is a plain string so the template engine escapes it; banner
	// text can echo server-supplied messages verbatim.
	Error string
}

// SetBase populates the common Base fields from the request context.
// It extracts user info from auth.CurrentUser and sets navigation fields.
//
// Parameters:
//   - b: pointer to the Base struct to populate
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFToken = csrf.Token(r)
	if user, ok := auth.CurrentUser(r); ok {
		b.IsLoggedIn = true
		b.Role = user.Role
		b.UserName = user.Name
	}
}

// SetError sets the banner error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = msg
}
