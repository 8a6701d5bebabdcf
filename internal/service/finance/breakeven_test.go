package finance

import (
	"testing"
	"time"

	"github.com/ceomapp/ceom/internal/domain/models"
)

func TestBreakEvenSingleProduct(t *testing.T) {
	products := []models.Product{{ID: "p1", Name: "Caja", Price: 100, Cost: 60}}

	report := BreakEven(4000, products)

	if len(report.Products) != 1 {
		t.Fatalf("expected 1 product result, got %d", len(report.Products))
	}
	p := report.Products[0]
	if !p.Applicable || !almostEqual(p.Units, 100) {
		t.Fatalf("expected 100 units, got %+v", p)
	}
	if !report.AggregateApplicable || !almostEqual(report.AggregateUnits, 100) {
		t.Fatalf("unexpected aggregate: %+v", report)
	}
}

func TestBreakEvenExcludesDegenerateMargins(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Price: 100, Cost: 60},
		{ID: "p2", Price: 50, Cost: 50},
	}

	report := BreakEven(4000, products)

	if report.Products[1].Applicable {
		t.Fatalf("price == cost must not be applicable: %+v", report.Products[1])
	}
	if !almostEqual(report.TotalMarginPerUnit, 40) {
		t.Fatalf("degenerate product leaked into margin sum: %v", report.TotalMarginPerUnit)
	}
	if !almostEqual(report.AggregateUnits, 100) {
		t.Fatalf("expected aggregate of 100 units, got %v", report.AggregateUnits)
	}
}

func TestBreakEvenAllDegenerate(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Price: 10, Cost: 10},
		{ID: "p2", Price: 5, Cost: 9},
	}

	report := BreakEven(1000, products)

	if report.AggregateApplicable {
		t.Fatalf("aggregate must be not applicable without positive margins: %+v", report)
	}
}

func TestBreakEvenMonotonicInPrice(t *testing.T) {
	pool := 4000.0
	previous := BreakEven(pool, []models.Product{{ID: "p", Price: 70, Cost: 60}}).Products[0].Units

	for price := 80.0; price <= 200; price += 10 {
		units := BreakEven(pool, []models.Product{{ID: "p", Price: price, Cost: 60}}).Products[0].Units
		if units >= previous {
			t.Fatalf("break-even did not strictly decrease: price=%v units=%v previous=%v", price, units, previous)
		}
		previous = units
	}
}

func TestFilterFixedCosts(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC) }
	costs := []models.FixedCost{
		{ID: "rent", Amount: 500, Category: "Alquiler", CreatedAt: day(1)},
		{ID: "power", Amount: 120, Category: "Servicios", CreatedAt: day(10)},
		{ID: "wages", Amount: 900, Category: "Personal", CreatedAt: day(20)},
	}

	cases := []struct {
		name   string
		filter CostFilter
		want   []string
	}{
		{name: "no filter keeps everything", filter: CostFilter{}, want: []string{"rent", "power", "wages"}},
		{name: "from bound is inclusive", filter: CostFilter{From: day(10)}, want: []string{"power", "wages"}},
		{name: "to bound is inclusive", filter: CostFilter{To: day(10)}, want: []string{"rent", "power"}},
		{name: "category match is case insensitive", filter: CostFilter{Category: "alquiler"}, want: []string{"rent"}},
		{name: "combined dimensions", filter: CostFilter{From: day(5), To: day(25), Category: "personal"}, want: []string{"wages"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterFixedCosts(costs, tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d costs, want %d (%v)", len(got), len(tc.want), got)
			}
			for i, c := range got {
				if c.ID != tc.want[i] {
					t.Fatalf("position %d: got %q, want %q", i, c.ID, tc.want[i])
				}
			}
		})
	}
}

func TestSumFixedCosts(t *testing.T) {
	costs := []models.FixedCost{{Amount: 500}, {Amount: 300}}
	if got := SumFixedCosts(costs); !almostEqual(got, 800) {
		t.Fatalf("SumFixedCosts = %v, want 800", got)
	}
	if got := SumFixedCosts(nil); got != 0 {
		t.Fatalf("SumFixedCosts(nil) = %v, want 0", got)
	}
}
