package api

import (
	"context"
	"net/http"
	"net/url"
)

// Collection binds the shared Client to one resource's base path and entity
// type. Each admin feature owns exactly one Collection.
type Collection[E any] struct {
	client *Client
	path   string
}

// NewCollection derives a typed collection endpoint from the shared client.
// path is the resource base path, e.g. "/location" or "/propertytype".
func NewCollection[E any](c *Client, path string) *Collection[E] {
	return &Collection[E]{client: c, path: path}
}

// List fetches the full collection in server order.
func (col *Collection[E]) List(ctx context.Context) ([]E, error) {
	var items []E
	if err := col.client.do(ctx, http.MethodGet, col.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create posts a draft and returns the persisted entity, including its
// server-assigned id.
func (col *Collection[E]) Create(ctx context.Context, draft E) (E, error) {
	var created E
	if err := col.client.do(ctx, http.MethodPost, col.path, draft, &created); err != nil {
		return created, err
	}
	return created, nil
}

// Update replaces the entity with the given id and returns the updated
// record as the server now holds it.
func (col *Collection[E]) Update(ctx context.Context, id string, draft E) (E, error) {
	var updated E
	if err := col.client.do(ctx, http.MethodPut, col.itemPath(id), draft, &updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// Delete removes the entity with the given id. A reference conflict comes
// back as *ConflictError with the server's reason.
func (col *Collection[E]) Delete(ctx context.Context, id string) error {
	return col.client.do(ctx, http.MethodDelete, col.itemPath(id), nil, nil)
}

func (col *Collection[E]) itemPath(id string) string {
	return col.path + "/" + url.PathEscape(id)
}
