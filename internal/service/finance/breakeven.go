package finance

import (
	"strings"
	"time"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// ProductBreakEven is the per-product break-even outcome. Units is only
// meaningful when Applicable is true; a product priced at or below its
// variable cost never breaks even and is flagged for a UI warning.
type ProductBreakEven struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Cost       float64 `json:"cost"`
	Units      float64 `json:"units,omitempty"`
	Applicable bool    `json:"applicable"`
}

// BreakEvenReport carries per-product results plus the blended aggregate.
//
// The aggregate intentionally sums one unit margin per valid product rather
// than weighting by sales mix. That is the metric the application has always
// shown, and stored analyses depend on it.
type BreakEvenReport struct {
	FixedCostPool       float64            `json:"fixed_cost_pool"`
	Products            []ProductBreakEven `json:"products"`
	TotalMarginPerUnit  float64            `json:"total_margin_per_unit"`
	AggregateUnits      float64            `json:"aggregate_units,omitempty"`
	AggregateApplicable bool               `json:"aggregate_applicable"`
}

// BreakEven computes the unit volume at which each product covers the fixed
// cost pool, units = pool / (price - cost), defined only for price > cost.
func BreakEven(fixedCostPool float64, products []models.Product) BreakEvenReport {
	report := BreakEvenReport{
		FixedCostPool: fixedCostPool,
		Products:      make([]ProductBreakEven, 0, len(products)),
	}

	for _, p := range products {
		result := ProductBreakEven{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Cost:      p.Cost,
		}
		if margin := p.Price - p.Cost; margin > 0 {
			result.Applicable = true
			result.Units = fixedCostPool / margin
			report.TotalMarginPerUnit += margin
		}
		report.Products = append(report.Products, result)
	}

	if report.TotalMarginPerUnit > 0 {
		report.AggregateApplicable = true
		report.AggregateUnits = fixedCostPool / report.TotalMarginPerUnit
	}

	return report
}

// CostFilter restricts a fixed-cost pool before break-even analysis. Zero
// time bounds and an empty category leave that dimension unrestricted.
type CostFilter struct {
	From     time.Time
	To       time.Time
	Category string
}

// FilterFixedCosts keeps the costs whose creation timestamp falls inside the
// inclusive [From, To] range and whose category matches case-insensitively.
func FilterFixedCosts(costs []models.FixedCost, f CostFilter) []models.FixedCost {
	out := make([]models.FixedCost, 0, len(costs))
	for _, c := range costs {
		if !f.From.IsZero() && c.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && c.CreatedAt.After(f.To) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(f.Category, c.Category) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SumFixedCosts totals the amounts of the given cost line items.
func SumFixedCosts(costs []models.FixedCost) float64 {
	var total float64
	for _, c := range costs {
		total += c.Amount
	}
	return total
}
