package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwellhub/dwellhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// SampleProperties returns a small fixed listing set for handler tests.
func SampleProperties() []models.Property {
	return []models.Property{
		{ID: "p1", Title: "Cozy PG near campus", Price: 8500, Location: "Pune", Category: "PG", Bedrooms: 1, Featured: true},
		{ID: "p2", Title: "Two-bed apartment", Price: 24000, Location: "Mumbai", Category: "Apartment", Bedrooms: 2},
		{ID: "p3", Title: "Garden villa", Price: 85000, Location: "Pune", Category: "Villa", Bedrooms: 4, Featured: true},
	}
}

// SampleLocations returns locations matching SampleProperties.
func SampleLocations() []models.Location {
	return []models.Location{
		{ID: "l1", Title: "Pune", ImportantLocation: true},
		{ID: "l2", Title: "Mumbai"},
	}
}

// SamplePropertyTypes returns categories matching SampleProperties.
func SamplePropertyTypes() []models.PropertyType {
	return []models.PropertyType{
		{ID: "t1", Name: "PG"},
		{ID: "t2", Name: "Apartment"},
		{ID: "t3", Name: "Villa"},
	}
}

// SampleReviews returns one approved and one pending review for p1.
func SampleReviews() []models.Review {
	return []models.Review{
		{ID: "r1", PropertyID: "p1", Author: "Asha", Content: "Great location.", Rating: 5, Approved: true},
		{ID: "r2", PropertyID: "p1", Author: "Ravi", Content: "A bit noisy.", Rating: 3},
	}
}
