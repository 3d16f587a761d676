// Package resourcectl holds the list/draft/delete state for one managed
// resource and mediates between admin screens and its backend collection
// endpoint.
//
// Every admin feature (properties, locations, property types, statistics,
// testimonials, reviews) instantiates the same Controller with its own
// entity type and collection client. The backend stays the source of truth:
// every mutation round-trips before local state changes, and reconciliation
// after update/delete matches by id, never by list position, because server
// order is not stable across concurrent edits by other admins.
//
// A controller survives any failure; the next user action simply retries.
package resourcectl

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Entity is a record with a server-assigned unique identifier.
type Entity interface {
	EntityID() string
}

// Client is the collection endpoint a controller drives. *api.Collection[E]
// satisfies it; tests substitute stubs.
type Client[E Entity] interface {
	List(ctx context.Context) ([]E, error)
	Create(ctx context.Context, draft E) (E, error)
	Update(ctx context.Context, id string, draft E) (E, error)
	Delete(ctx context.Context, id string) error
}

// Controller owns one resource's collection plus the active form draft and
// the pending delete. All methods are safe for concurrent use; the lock is
// released around network calls so the in-flight states stay observable.
type Controller[E Entity] struct {
	name     string
	client   Client[E]
	validate func(E) error
	log      *zap.Logger

	mu              sync.Mutex
	items           []E
	loadState       LoadState
	loadErr         error
	draft           E
	editingID       string // "" means create mode
	pendingDeleteID string
	submitState     SubmitState
	submitErr       error
	closed          bool
}

// New builds a controller. validate is the resource's required-field check,
// run locally before a submit goes to the network; it may be nil for
// resources with no required fields.
func New[E Entity](name string, client Client[E], validate func(E) error, logger *zap.Logger) *Controller[E] {
	return &Controller[E]{
		name:     name,
		client:   client,
		validate: validate,
		log:      logger,
	}
}

// Load fetches the collection. Calling while a load is already in flight is
// a no-op, so retry buttons cannot stack duplicate requests. On failure the
// previous items stay visible (stale beats blank) and the error is kept for
// the view.
func (c *Controller[E]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.loadState == LoadLoading {
		c.mu.Unlock()
		return nil
	}
	c.loadState = LoadLoading
	c.mu.Unlock()

	items, err := c.client.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err != nil {
		c.loadState = LoadFailed
		c.loadErr = err
		c.log.Warn("list fetch failed", zap.String("resource", c.name), zap.Error(err))
		return err
	}
	c.items = items
	c.loadState = LoadLoaded
	c.loadErr = nil
	return nil
}

// Items returns a copy of the current collection in server order.
func (c *Controller[E]) Items() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an entity by id in the local list.
func (c *Controller[E]) Get(id string) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero E
	return zero, false
}

// LoadStatus reports the load state and, when Failed, its reason.
func (c *Controller[E]) LoadStatus() (LoadState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadState, c.loadErr
}

// BeginCreate resets the draft to an empty record in create mode.
func (c *Controller[E]) BeginCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero E
	c.draft = zero
	c.editingID = ""
	if c.submitState != Submitting {
		c.submitState = SubmitIdle
		c.submitErr = nil
	}
}

// BeginEdit copies the entity with the given id into the draft and switches
// to edit mode. An id missing from the local list means the view is stale;
// the caller should reload.
func (c *Controller[E]) BeginEdit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			c.draft = it
			c.editingID = id
			if c.submitState != Submitting {
				c.submitState = SubmitIdle
				c.submitErr = nil
			}
			return nil
		}
	}
	return ErrNotFound
}

// SetDraft replaces the draft fields. Purely local; edit/create mode is
// untouched, so a failed submit can be corrected and retried without
// re-entering data. Field coercion (numeric parsing, rating clamping)
// belongs to the feature's form parser, before this call.
func (c *Controller[E]) SetDraft(draft E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = draft
}

// Draft returns the current draft and the id being edited ("" in create
// mode).
func (c *Controller[E]) Draft() (E, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft, c.editingID
}

// SubmitDraft validates the draft and sends it. Create mode appends the
// server-returned entity; edit mode replaces the matching element by id. On
// any failure the draft and items are preserved so the user can retry.
func (c *Controller[E]) SubmitDraft(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.submitState == Submitting {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.validate != nil {
		if err := c.validate(c.draft); err != nil {
			// Fast-fail before any network call; no state change. The
			// server remains the validation authority.
			c.mu.Unlock()
			return err
		}
	}
	draft := c.draft
	editingID := c.editingID
	c.submitState = Submitting
	c.submitErr = nil
	c.mu.Unlock()

	var (
		result E
		err    error
	)
	if editingID == "" {
		result, err = c.client.Create(ctx, draft)
	} else {
		result, err = c.client.Update(ctx, editingID, draft)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err != nil {
		c.submitState = SubmitFailed
		c.submitErr = err
		c.log.Warn("submit failed",
			zap.String("resource", c.name),
			zap.String("editing_id", editingID),
			zap.Error(err))
		return err
	}

	if editingID == "" {
		c.items = append(c.items, result)
	} else {
		replaced := false
		for i, it := range c.items {
			if it.EntityID() == editingID {
				c.items[i] = result
				replaced = true
				break
			}
		}
		if !replaced {
			// The row vanished locally while the edit was in flight
			// (another admin's delete). Keep the server's version visible.
			c.items = append(c.items, result)
		}
	}
	var zero E
	c.draft = zero
	c.editingID = ""
	c.submitState = SubmitIdle
	return nil
}

// RequestDelete marks an entity for deletion. Pure confirmation gate: no
// network call happens until ConfirmDelete.
func (c *Controller[E]) RequestDelete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			c.pendingDeleteID = id
			return nil
		}
	}
	return ErrNotFound
}

// PendingDelete returns the entity awaiting confirmation, if any.
func (c *Controller[E]) PendingDelete() (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero E
	if c.pendingDeleteID == "" {
		return zero, false
	}
	for _, it := range c.items {
		if it.EntityID() == c.pendingDeleteID {
			return it, true
		}
	}
	return zero, false
}

// ConfirmDelete performs the pending delete. On success the row is removed
// by id. On failure — typically a reference conflict — items and the
// pending id are left untouched so the user may retry or cancel explicitly.
func (c *Controller[E]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.pendingDeleteID == "" {
		c.mu.Unlock()
		return ErrNoPendingDelete
	}
	if c.submitState == Submitting {
		c.mu.Unlock()
		return ErrBusy
	}
	id := c.pendingDeleteID
	c.submitState = Submitting
	c.submitErr = nil
	c.mu.Unlock()

	err := c.client.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err != nil {
		c.submitState = SubmitFailed
		c.submitErr = err
		c.log.Warn("delete failed",
			zap.String("resource", c.name),
			zap.String("id", id),
			zap.Error(err))
		return err
	}
	kept := c.items[:0]
	for _, it := range c.items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.pendingDeleteID = ""
	c.submitState = SubmitIdle
	return nil
}

// CancelDelete clears the pending delete without touching the network.
func (c *Controller[E]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDeleteID = ""
	if c.submitState != Submitting {
		c.submitState = SubmitIdle
		c.submitErr = nil
	}
}

// SubmitStatus reports the mutation state and, when Failed, its reason.
func (c *Controller[E]) SubmitStatus() (SubmitState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitState, c.submitErr
}

// Close tears the controller down. Results of requests still in flight are
// discarded instead of being applied to a dead screen.
func (c *Controller[E]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
