package reviews

import (
	"context"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/resourcectl"
	"github.com/dwellhub/dwellhub/internal/domain/models"
	"github.com/dwellhub/dwellhub/internal/testutil"
)

type stubClient struct {
	items []models.Review
}

func (s *stubClient) List(context.Context) ([]models.Review, error) { return s.items, nil }
func (s *stubClient) Create(_ context.Context, d models.Review) (models.Review, error) {
	d.ID = "new1"
	return d, nil
}
func (s *stubClient) Update(_ context.Context, id string, d models.Review) (models.Review, error) {
	d.ID = id
	return d, nil
}
func (s *stubClient) Delete(context.Context, string) error { return nil }

func TestSortPendingPutsUnapprovedFirst(t *testing.T) {
	vms := []reviewVM{
		{Review: models.Review{ID: "a", Approved: true}},
		{Review: models.Review{ID: "b"}},
		{Review: models.Review{ID: "c", Approved: true}},
		{Review: models.Review{ID: "d"}},
	}
	got := SortPending(vms)
	wantOrder := []string{"b", "d", "a", "c"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestBuildVMsFallsBackToPropertyID(t *testing.T) {
	items := []models.Review{
		{ID: "r1", PropertyID: "p1"},
		{ID: "r2", PropertyID: "p2"},
	}
	titles := map[string]string{"p1": "Cozy PG"}

	vms := buildVMs(items, titles)
	if vms[0].PropertyTitle != "Cozy PG" {
		t.Errorf("known property title = %q", vms[0].PropertyTitle)
	}
	if vms[1].PropertyTitle != "p2" {
		t.Errorf("unknown property should fall back to its id, got %q", vms[1].PropertyTitle)
	}
}

func TestHandleApproveTogglesFlag(t *testing.T) {
	client := &stubClient{items: testutil.SampleReviews()}
	logger := zap.NewNop()
	ctrl := resourcectl.New[models.Review]("reviews", client, nil, logger)
	h := NewHandler(ctrl, nil, uierrors.NewErrorLogger(logger), logger)

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// r2 is the pending review in the fixture set.
	req := testutil.WithChiURLParam(httptest.NewRequest("POST", "/admin/reviews/r2/approve", nil), "id", "r2")
	rec := httptest.NewRecorder()

	h.HandleApprove(rec, req)

	if rec.Code != 303 {
		t.Fatalf("status = %d, want 303 redirect", rec.Code)
	}
	rv, ok := ctrl.Get("r2")
	if !ok {
		t.Fatal("review vanished after approve")
	}
	if !rv.Approved {
		t.Error("review not approved")
	}

	// Approving again revokes.
	rec = httptest.NewRecorder()
	h.HandleApprove(rec, req)
	rv, _ = ctrl.Get("r2")
	if rv.Approved {
		t.Error("second approve should revoke")
	}
}
