// internal/app/features/errors/errorlog.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/dwellhub/dwellhub/internal/app/api"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure in one line instead of four.
//
// Usage:
//
//	if err != nil {
//		h.ErrLog.LogServerError(w, r, "list properties failed", err, "Could not load properties.", "/admin")
//		return
//	}
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the error and renders the server error page. When the
// failure is the backend being unreachable, the unavailable page is shown
// instead so the user knows a retry is worthwhile.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	if api.IsUnavailable(err) {
		RenderUnavailable(w, r, api.UserMessage(err), backURL)
		return
	}
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs the error and renders a 400 with the user message.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	w.WriteHeader(http.StatusBadRequest)
	data := newPageData(r, "Invalid request", userMsg, backURL)
	templates.Render(w, r, "error_server", data)
}

// LogForbidden logs the error and renders the access denied page.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderForbidden(w, r, userMsg, backURL)
}

// HTMXLogServerError logs the error and answers an HTMX request with a
// client-side redirect to the back URL. HTMX swaps fragments; rendering a
// full error page into a table cell would be worse than a redirect.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	htmxRedirect(w, backURL, http.StatusInternalServerError)
}

// HTMXLogBadRequest logs the error and answers an HTMX request with a
// client-side redirect.
func (e *ErrorLogger) HTMXLogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	htmxRedirect(w, backURL, http.StatusBadRequest)
}

// HTMXLogForbidden logs the error and answers an HTMX request with a
// client-side redirect to /forbidden.
func (e *ErrorLogger) HTMXLogForbidden(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	htmxRedirect(w, "/forbidden", http.StatusForbidden)
}

func htmxRedirect(w http.ResponseWriter, dest string, status int) {
	if dest == "" {
		dest = "/"
	}
	w.Header().Set("HX-Redirect", dest)
	w.WriteHeader(status)
}
