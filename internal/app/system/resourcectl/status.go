package resourcectl

import "errors"

// LoadState tracks the collection fetch lifecycle for one resource.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadLoaded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmitState tracks the pending mutation (create, update, or delete).
// While Submitting, the UI must disable the triggering control; this is the
// whole concurrency discipline for a resource.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	Submitting
	SubmitFailed
)

func (s SubmitState) String() string {
	switch s {
	case SubmitIdle:
		return "idle"
	case Submitting:
		return "submitting"
	case SubmitFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrNotFound means the requested id is not in the local list. The view
	// is stale; the remedy is a refresh, not a crash.
	ErrNotFound = errors.New("record is not in the current list")

	// ErrBusy means a mutation is already in flight for this resource.
	ErrBusy = errors.New("a request is already in flight")

	// ErrNoPendingDelete means ConfirmDelete was called without a prior
	// RequestDelete.
	ErrNoPendingDelete = errors.New("no delete is pending")

	// ErrClosed means the controller was torn down; late results are
	// discarded rather than applied.
	ErrClosed = errors.New("controller is closed")
)

// ValidationError reports a required field missing from the draft. It is
// raised locally, before any network call, and changes no state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is a local draft validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
