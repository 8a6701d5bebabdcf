package models

import "time"

// Payment methods accepted on sale registration.
const (
	PaymentCash     = "Efectivo"
	PaymentQR       = "QR"
	PaymentTransfer = "Transferencia"
	PaymentCard     = "Tarjeta"
)

// Sale records one sales transaction. Product is the product name as sold,
// Total is Quantity*UnitPrice computed at registration time. Event is empty
// for regular sales.
type Sale struct {
	ID            string    `bson:"_id" json:"id"`
	BusinessID    string    `bson:"business_id" json:"business_id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Date          string    `bson:"date" json:"date"`
	Product       string    `bson:"product" json:"product"`
	Quantity      int       `bson:"quantity" json:"quantity"`
	UnitPrice     float64   `bson:"unit_price" json:"unit_price"`
	Total         float64   `bson:"total" json:"total"`
	PaymentMethod string    `bson:"payment_method" json:"payment_method"`
	Event         string    `bson:"event,omitempty" json:"event,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Event describes a sales event (fair, expo) a sale can be attached to.
type Event struct {
	ID         string    `bson:"_id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	Name       string    `bson:"name" json:"name"`
	Date       string    `bson:"date" json:"date"`
	Location   string    `bson:"location,omitempty" json:"location,omitempty"`
	Type       string    `bson:"type,omitempty" json:"type,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
