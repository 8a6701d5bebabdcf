package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// CreateProductionRecord inserts one production log entry.
func (r *Repository) CreateProductionRecord(ctx context.Context, record models.ProductionRecord) error {
	if _, err := r.db.Collection(collProduction).InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert production record: %w", err)
	}
	return nil
}

// GetProductionRecord finds one production record by id.
func (r *Repository) GetProductionRecord(ctx context.Context, id string) (models.ProductionRecord, error) {
	var record models.ProductionRecord
	err := r.db.Collection(collProduction).FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ProductionRecord{}, ErrNotFound
	}
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("find production record %s: %w", id, err)
	}
	return record, nil
}

// ListProduction returns the production history of one business, most
// recently registered first.
func (r *Repository) ListProduction(ctx context.Context, businessID string) ([]models.ProductionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registered_at", Value: -1}})
	cursor, err := r.db.Collection(collProduction).Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list production for business %s: %w", businessID, err)
	}

	var records []models.ProductionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode production records: %w", err)
	}
	return records, nil
}

// UpdateProductionQuantity overwrites the quantity of one record.
func (r *Repository) UpdateProductionQuantity(ctx context.Context, id string, quantity int) error {
	update := bson.M{"$set": bson.M{"quantity": quantity}}
	result, err := r.db.Collection(collProduction).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update production record %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProductionRecord removes one record from the history.
func (r *Repository) DeleteProductionRecord(ctx context.Context, id string) error {
	result, err := r.db.Collection(collProduction).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete production record %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
