package search_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dwellhub/dwellhub/internal/app/features/search"
)

func TestCriteriaFromRequest(t *testing.T) {
	tests := []struct {
		name                  string
		url                   string
		wantQ, wantLoc, wantC string
	}{
		{"empty", "/search", "", "", ""},
		{"query only", "/search?q=cozy", "cozy", "", ""},
		{"all three", "/search?q=villa&location=Pune&category=PG", "villa", "Pune", "PG"},
		{"query is trimmed", "/search?q=%20cozy%20", "cozy", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			crit := search.CriteriaFromRequest(req)
			if crit.Query != tt.wantQ || crit.Location != tt.wantLoc || crit.Category != tt.wantC {
				t.Errorf("CriteriaFromRequest(%s) = %+v, want {%q %q %q}",
					tt.url, crit, tt.wantQ, tt.wantLoc, tt.wantC)
			}
		})
	}
}
