package pricing

import (
	"math"
	"testing"
)

func TestSuggest(t *testing.T) {
	cases := []struct {
		name          string
		category      string
		items         []CostItem
		laborPercent  float64
		batchQuantity int
		want          Quote
	}{
		{
			name:         "service with explicit labor",
			category:     "servicios",
			items:        []CostItem{{Name: "material", Value: 40}, {Name: "insumo", Value: 60}},
			laborPercent: 50,
			want:         Quote{TotalCost: 100, UnitCost: 100, LaborPercent: 50, SuggestedPrice: 150},
		},
		{
			name:          "alimentos splits the batch",
			category:      "alimentos",
			items:         []CostItem{{Name: "carne", Value: 80}, {Name: "pan", Value: 20}},
			laborPercent:  30,
			batchQuantity: 10,
			want:          Quote{TotalCost: 100, UnitCost: 10, LaborPercent: 30, SuggestedPrice: 13},
		},
		{
			name:     "zero labor falls back to category default",
			category: "retail",
			items:    []CostItem{{Name: "empaque", Value: 50}},
			want:     Quote{TotalCost: 50, UnitCost: 50, LaborPercent: 20, SuggestedPrice: 60},
		},
		{
			name:          "batch quantity ignored outside alimentos",
			category:      "retail",
			items:         []CostItem{{Name: "empaque", Value: 50}},
			laborPercent:  20,
			batchQuantity: 5,
			want:          Quote{TotalCost: 50, UnitCost: 50, LaborPercent: 20, SuggestedPrice: 60},
		},
		{
			name:         "unknown category default markup",
			category:     "otros",
			items:        []CostItem{{Name: "x", Value: 10}},
			laborPercent: 0,
			want:         Quote{TotalCost: 10, UnitCost: 10, LaborPercent: 30, SuggestedPrice: 13},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Suggest(tc.category, tc.items, tc.laborPercent, tc.batchQuantity)
			if math.Abs(got.TotalCost-tc.want.TotalCost) > 1e-9 ||
				math.Abs(got.UnitCost-tc.want.UnitCost) > 1e-9 ||
				math.Abs(got.LaborPercent-tc.want.LaborPercent) > 1e-9 ||
				math.Abs(got.SuggestedPrice-tc.want.SuggestedPrice) > 1e-9 {
				t.Fatalf("Suggest = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDefaultLaborPercent(t *testing.T) {
	if got := DefaultLaborPercent("alimentos"); got != 30 {
		t.Fatalf("alimentos default = %v, want 30", got)
	}
	if got := DefaultLaborPercent("servicios"); got != 50 {
		t.Fatalf("servicios default = %v, want 50", got)
	}
	if got := DefaultLaborPercent("desconocida"); got != 30 {
		t.Fatalf("fallback default = %v, want 30", got)
	}
}
