package models

import "time"

// Business categories recognized by the pricing and simulation tooling.
const (
	CategoryAlimentos = "alimentos"
	CategoryServicios = "servicios"
	CategoryRetail    = "retail"
)

// Business is a tenant unit. Every catalog, production, cost and sales
// record belongs to exactly one business.
type Business struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	OwnerID     string    `bson:"owner_id" json:"owner_id"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Category    string    `bson:"category" json:"category"`
	Subcategory string    `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
