package models

import "time"

// ProductionRecord captures the quantity of one product made on a given date.
// Date keeps the original "2006-01-02" string form; RegisteredAt is the
// server-side insertion timestamp used for history ordering.
//
// ProductID carries no referential integrity: records pointing at deleted
// products stay in the collection and are skipped during aggregation.
type ProductionRecord struct {
	ID           string    `bson:"_id" json:"id"`
	BusinessID   string    `bson:"business_id" json:"business_id"`
	ProductID    string    `bson:"product_id" json:"product_id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Date         string    `bson:"date" json:"date"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	RegisteredAt time.Time `bson:"registered_at" json:"registered_at"`
}
