package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// CreateSale inserts one sales transaction.
func (r *Repository) CreateSale(ctx context.Context, sale models.Sale) error {
	if _, err := r.db.Collection(collSales).InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListSales returns the sales of one business, newest date first.
func (r *Repository) ListSales(ctx context.Context, businessID string) ([]models.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.db.Collection(collSales).Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales for business %s: %w", businessID, err)
	}

	var sales []models.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

// CreateEvent inserts one sales event.
func (r *Repository) CreateEvent(ctx context.Context, event models.Event) error {
	if _, err := r.db.Collection(collEvents).InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListEvents returns the sales events of one business.
func (r *Repository) ListEvents(ctx context.Context, businessID string) ([]models.Event, error) {
	cursor, err := r.db.Collection(collEvents).Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("list events for business %s: %w", businessID, err)
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}
