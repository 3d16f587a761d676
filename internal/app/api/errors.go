package api

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the backend reports 404 for an id. Admin
// screens treat it as a stale view: the fix is to refresh the list, not to
// crash.
var ErrNotFound = errors.New("record not found")

// RequestError reports a round trip that did not complete usefully: a
// transport failure, timeout, or 5xx. Local state is untouched and the
// operation can simply be retried by the user.
type RequestError struct {
	Method string
	Path   string
	Status int // 0 when the request never reached the backend
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ConflictError reports a mutation the backend refused because the record is
// referenced elsewhere (e.g. deleting a Location that properties still use).
// Message carries the server's reason verbatim when one was given.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// RemoteError covers other rejections the backend expressed through its
// envelope or a 4xx status (validation, bad request, auth).
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// IsNotFound reports whether err means the target id no longer exists.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is a cross-resource reference conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsUnavailable reports whether err is a transport/5xx failure, i.e. the
// backend may be fine and the call is worth retrying.
func IsUnavailable(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// UserMessage converts any client error into a sentence fit for the admin
// UI. Server-supplied conflict and rejection messages pass through verbatim.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return "That record no longer exists. Refresh the list and try again."
	case IsConflict(err):
		var ce *ConflictError
		errors.As(err, &ce)
		return ce.Message
	case IsUnavailable(err):
		return "The listing service is unreachable. Please try again."
	default:
		var re *RemoteError
		if errors.As(err, &re) && re.Message != "" {
			return re.Message
		}
		return "The listing service rejected the request."
	}
}
