package models

import "time"

// WeeklyReport is the snapshot persisted by the reporting scheduler: the
// most recent week's financial summary for one business.
type WeeklyReport struct {
	ID             string    `bson:"_id" json:"id"`
	BusinessID     string    `bson:"business_id" json:"business_id"`
	BusinessName   string    `bson:"business_name" json:"business_name"`
	Week           string    `bson:"week" json:"week"`
	Revenue        float64   `bson:"revenue" json:"revenue"`
	VariableCost   float64   `bson:"variable_cost" json:"variable_cost"`
	GrossProfit    float64   `bson:"gross_profit" json:"gross_profit"`
	FixedCosts     float64   `bson:"fixed_costs" json:"fixed_costs"`
	NetProfit      float64   `bson:"net_profit" json:"net_profit"`
	SkippedRecords int       `bson:"skipped_records" json:"skipped_records"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
