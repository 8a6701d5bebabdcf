package models

import "time"

// FrequencyWeekly is the only frequency the UI ever writes. The field is
// stored verbatim and never used to normalize amounts: the net profit
// calculation treats every fixed cost as already weekly.
const FrequencyWeekly = "semanal"

// FixedCost is one recurring cost line item (rent, salaries, utilities).
type FixedCost struct {
	ID         string    `bson:"_id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name"`
	Amount     float64   `bson:"amount" json:"amount"`
	Frequency  string    `bson:"frequency" json:"frequency"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
