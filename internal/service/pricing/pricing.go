// Package pricing implements the suggested-price calculator: sum the cost
// items of a product or service, optionally split the total across a batch,
// and add a labor markup on top of the unit cost.
package pricing

import "github.com/ceomapp/ceom/internal/domain/models"

// CostItem is one ingredient, material or supply line of the calculation.
type CostItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Quote is the calculator outcome. UnitCost becomes the product's variable
// cost and SuggestedPrice its sale price when saved to the catalog.
type Quote struct {
	TotalCost      float64 `json:"total_cost"`
	UnitCost       float64 `json:"unit_cost"`
	LaborPercent   float64 `json:"labor_percent"`
	SuggestedPrice float64 `json:"suggested_price"`
}

var defaultLaborByCategory = map[string]float64{
	models.CategoryAlimentos: 30,
	models.CategoryServicios: 50,
	models.CategoryRetail:    20,
}

// DefaultLaborPercent returns the labor markup used when the caller does not
// provide one. Unknown categories fall back to 30%.
func DefaultLaborPercent(category string) float64 {
	if pct, ok := defaultLaborByCategory[category]; ok {
		return pct
	}
	return 30
}

// Suggest computes the suggested sale price. Batch quantity only applies to
// the alimentos category, where one costing covers a whole batch (a pot of
// dough, a tray of burgers) and the unit cost is the total divided by yield.
func Suggest(category string, items []CostItem, laborPercent float64, batchQuantity int) Quote {
	var total float64
	for _, item := range items {
		total += item.Value
	}

	if laborPercent <= 0 {
		laborPercent = DefaultLaborPercent(category)
	}

	unit := total
	if category == models.CategoryAlimentos && batchQuantity > 0 {
		unit = total / float64(batchQuantity)
	}

	return Quote{
		TotalCost:      total,
		UnitCost:       unit,
		LaborPercent:   laborPercent,
		SuggestedPrice: unit + unit*laborPercent/100,
	}
}
