package propfilter

import (
	"reflect"
	"testing"

	"github.com/dwellhub/dwellhub/internal/domain/models"
)

var sample = []models.Property{
	{ID: "1", Title: "Cozy PG", Description: "Near the station", Location: "Pune", Category: "PG"},
	{ID: "2", Title: "Villa", Description: "Garden and pool", Location: "Pune", Category: "Villa"},
	{ID: "3", Title: "Studio Flat", Description: "cozy corner unit", Location: "Mumbai", Category: "Apartment"},
}

func ids(items []models.Property) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"empty criteria is identity", Criteria{}, []string{"1", "2", "3"}},
		{"query matches title case-insensitively", Criteria{Query: "cozy"}, []string{"1", "3"}},
		{"query matches description", Criteria{Query: "garden"}, []string{"2"}},
		{"location is exact", Criteria{Location: "Pune"}, []string{"1", "2"}},
		{"category is exact", Criteria{Category: "PG"}, []string{"1"}},
		{"predicates are ANDed", Criteria{Location: "Pune", Category: "PG"}, []string{"1"}},
		{"all three predicates", Criteria{Query: "cozy", Location: "Pune", Category: "PG"}, []string{"1"}},
		{"no match yields empty", Criteria{Location: "Delhi"}, []string{}},
		{"partial location does not match", Criteria{Location: "Pun"}, []string{}},
		{"whitespace query means no constraint", Criteria{Query: "   "}, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sample, tt.c))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	c := Criteria{Query: "cozy", Location: "Pune"}
	first := Filter(sample, c)
	second := Filter(sample, c)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated filtering diverged: %v vs %v", ids(first), ids(second))
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	got := ids(Filter(sample, Criteria{Location: "Pune"}))
	want := []string{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want input order %v", got, want)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	before := ids(sample)
	_ = Filter(sample, Criteria{Category: "Villa"})
	if !reflect.DeepEqual(ids(sample), before) {
		t.Error("input slice was mutated")
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Error("empty criteria should be zero")
	}
	if (Criteria{Category: "PG"}).IsZero() {
		t.Error("category-only criteria should not be zero")
	}
}
