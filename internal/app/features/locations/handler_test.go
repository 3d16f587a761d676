package locations

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/domain/models"
	"github.com/dwellhub/dwellhub/internal/testutil"
)

type stubClient struct {
	items   []models.Location
	deleted []string
}

func (s *stubClient) List(context.Context) ([]models.Location, error) { return s.items, nil }
func (s *stubClient) Create(_ context.Context, d models.Location) (models.Location, error) {
	d.ID = "new1"
	return d, nil
}
func (s *stubClient) Update(_ context.Context, id string, d models.Location) (models.Location, error) {
	d.ID = id
	return d, nil
}
func (s *stubClient) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestHandler(client *stubClient) (*Handler, *resourcectl.Controller[models.Location]) {
	logger := zap.NewNop()
	ctrl := resourcectl.New[models.Location]("locations", client, nil, logger)
	return NewHandler(ctrl, uierrors.NewErrorLogger(logger), logger), ctrl
}

func TestParseLocationForm(t *testing.T) {
	form := url.Values{
		"title":              {"  Pune  "},
		"description":        {"IT hub"},
		"google_map_url":     {"https://maps.example.com/pune"},
		"important_location": {"on"},
	}
	req := httptest.NewRequest("POST", "/admin/locations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	loc := parseLocationForm(req)
	if loc.Title != "Pune" {
		t.Errorf("Title = %q, want trimmed", loc.Title)
	}
	if !loc.ImportantLocation {
		t.Error("checkbox not parsed")
	}
}

func TestDeleteConfirmsOnlyTheNamedRow(t *testing.T) {
	client := &stubClient{items: testutil.SampleLocations()}
	h, ctrl := newTestHandler(client)

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// A confirmation page for l2 is still open in another tab.
	if err := ctrl.RequestDelete("l2"); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}

	// Confirming the page for l1 must delete l1, not the pending l2.
	req := testutil.WithChiURLParam(httptest.NewRequest("POST", "/admin/locations/l1/delete", nil), "id", "l1")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != 303 {
		t.Errorf("status = %d, want 303 redirect", rec.Code)
	}
	if len(client.deleted) != 1 || client.deleted[0] != "l1" {
		t.Errorf("backend deletes = %v, want [l1]", client.deleted)
	}
	if _, ok := ctrl.Get("l2"); !ok {
		t.Error("l2 was deleted; only the row named in the URL may go")
	}
}

func TestDeleteWithoutPendingReArms(t *testing.T) {
	client := &stubClient{items: testutil.SampleLocations()}
	h, ctrl := newTestHandler(client)

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Direct POST with no confirmation page served first.
	req := testutil.WithChiURLParam(httptest.NewRequest("POST", "/admin/locations/l1/delete", nil), "id", "l1")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != 303 {
		t.Errorf("status = %d, want 303 redirect", rec.Code)
	}
	if len(client.deleted) != 1 || client.deleted[0] != "l1" {
		t.Errorf("backend deletes = %v, want [l1]", client.deleted)
	}
}
