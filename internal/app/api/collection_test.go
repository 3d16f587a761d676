package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

type widget struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-key", 2*time.Second, zap.NewNop()), srv
}

func TestCollectionList(t *testing.T) {
	var gotAuth, gotReqID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/widget" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []widget{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}},
		})
	}))

	col := NewCollection[widget](client, "/widget")
	items, err := col.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("items = %+v, want server order [a b]", items)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotReqID == "" {
		t.Error("expected an X-Request-ID header")
	}
}

func TestCollectionCreateReturnsServerEntity(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var draft widget
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			t.Errorf("decode draft: %v", err)
		}
		draft.ID = "x7"
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": draft})
	}))

	col := NewCollection[widget](client, "/widget")
	created, err := col.Create(context.Background(), widget{Title: "new"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "x7" || created.Title != "new" {
		t.Errorf("created = %+v, want server-assigned id x7", created)
	}
}

func TestCollectionUpdateHitsItemPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/widget/b" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": widget{ID: "b", Title: "renamed"}})
	}))

	col := NewCollection[widget](client, "/widget")
	updated, err := col.Update(context.Background(), "b", widget{Title: "renamed"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != "b" || updated.Title != "renamed" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestDeleteConflictCarriesServerReason(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "location is used by 3 properties",
		})
	}))

	col := NewCollection[widget](client, "/location")
	err := col.Delete(context.Background(), "loc1")
	if !IsConflict(err) {
		t.Fatalf("Delete = %v, want conflict", err)
	}
	if msg := UserMessage(err); msg != "location is used by 3 properties" {
		t.Errorf("user message = %q, want server reason verbatim", msg)
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	col := NewCollection[widget](client, "/widget")
	_, err := col.Update(context.Background(), "gone", widget{Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update = %v, want ErrNotFound", err)
	}
}

func TestServerErrorIsRetryable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	col := NewCollection[widget](client, "/widget")
	_, err := col.List(context.Background())
	if !IsUnavailable(err) {
		t.Errorf("List = %v, want unavailable (retryable)", err)
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening

	client := New(srv.URL, "", time.Second, zap.NewNop())
	col := NewCollection[widget](client, "/widget")
	_, err := col.List(context.Background())
	if !IsUnavailable(err) {
		t.Errorf("List = %v, want unavailable", err)
	}
}

func TestEnvelopeRejectionSurfacesMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "title already exists"})
	}))

	col := NewCollection[widget](client, "/widget")
	_, err := col.Create(context.Background(), widget{Title: "dup"})
	if err == nil {
		t.Fatal("Create: expected rejection")
	}
	if msg := UserMessage(err); msg != "title already exists" {
		t.Errorf("user message = %q, want envelope message", msg)
	}
}
