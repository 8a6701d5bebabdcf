package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// CreateBusiness inserts a new business document.
func (r *Repository) CreateBusiness(ctx context.Context, business models.Business) error {
	if _, err := r.db.Collection(collBusinesses).InsertOne(ctx, business); err != nil {
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetBusiness finds a business by id.
func (r *Repository) GetBusiness(ctx context.Context, id string) (models.Business, error) {
	var business models.Business
	err := r.db.Collection(collBusinesses).FindOne(ctx, bson.M{"_id": id}).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Business{}, ErrNotFound
	}
	if err != nil {
		return models.Business{}, fmt.Errorf("find business %s: %w", id, err)
	}
	return business, nil
}

// ListBusinesses returns every business in the system.
func (r *Repository) ListBusinesses(ctx context.Context) ([]models.Business, error) {
	return r.listBusinesses(ctx, bson.M{})
}

// ListBusinessesByOwner returns the businesses owned by one user.
func (r *Repository) ListBusinessesByOwner(ctx context.Context, ownerID string) ([]models.Business, error) {
	return r.listBusinesses(ctx, bson.M{"owner_id": ownerID})
}

func (r *Repository) listBusinesses(ctx context.Context, filter bson.M) ([]models.Business, error) {
	cursor, err := r.db.Collection(collBusinesses).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("decode businesses: %w", err)
	}
	return businesses, nil
}
