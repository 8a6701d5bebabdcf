package models

import "time"

// Product is a catalog entry. Price is the unit sale price and Cost the unit
// variable cost. Price greater than Cost is not enforced; a zero or negative
// margin is a valid degenerate state that downstream calculators must handle.
type Product struct {
	ID         string    `bson:"_id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name"`
	Price      float64   `bson:"price" json:"price"`
	Cost       float64   `bson:"cost" json:"cost"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
