package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// CreateFixedCost inserts one fixed-cost line item.
func (r *Repository) CreateFixedCost(ctx context.Context, cost models.FixedCost) error {
	if _, err := r.db.Collection(collFixedCosts).InsertOne(ctx, cost); err != nil {
		return fmt.Errorf("insert fixed cost: %w", err)
	}
	return nil
}

// GetFixedCost finds one fixed cost by id.
func (r *Repository) GetFixedCost(ctx context.Context, id string) (models.FixedCost, error) {
	var cost models.FixedCost
	err := r.db.Collection(collFixedCosts).FindOne(ctx, bson.M{"_id": id}).Decode(&cost)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.FixedCost{}, ErrNotFound
	}
	if err != nil {
		return models.FixedCost{}, fmt.Errorf("find fixed cost %s: %w", id, err)
	}
	return cost, nil
}

// ListFixedCosts returns every fixed cost of one business.
func (r *Repository) ListFixedCosts(ctx context.Context, businessID string) ([]models.FixedCost, error) {
	cursor, err := r.db.Collection(collFixedCosts).Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("list fixed costs for business %s: %w", businessID, err)
	}

	var costs []models.FixedCost
	if err := cursor.All(ctx, &costs); err != nil {
		return nil, fmt.Errorf("decode fixed costs: %w", err)
	}
	return costs, nil
}

// UpdateFixedCost overwrites name, amount and category of an existing cost.
func (r *Repository) UpdateFixedCost(ctx context.Context, id string, name string, amount float64, category string) error {
	update := bson.M{"$set": bson.M{"name": name, "amount": amount, "category": category}}
	result, err := r.db.Collection(collFixedCosts).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update fixed cost %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFixedCost removes one cost line item.
func (r *Repository) DeleteFixedCost(ctx context.Context, id string) error {
	result, err := r.db.Collection(collFixedCosts).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete fixed cost %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
