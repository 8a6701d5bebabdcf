package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// CreateProduct inserts a new catalog entry.
func (r *Repository) CreateProduct(ctx context.Context, product models.Product) error {
	if _, err := r.db.Collection(collProducts).InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetProduct finds a product by id.
func (r *Repository) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := r.db.Collection(collProducts).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("find product %s: %w", id, err)
	}
	return product, nil
}

// ListProducts returns the catalog of one business.
func (r *Repository) ListProducts(ctx context.Context, businessID string) ([]models.Product, error) {
	cursor, err := r.db.Collection(collProducts).Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("list products for business %s: %w", businessID, err)
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// UpdateProduct overwrites name, price and cost of an existing product.
func (r *Repository) UpdateProduct(ctx context.Context, id string, name string, price, cost float64) error {
	update := bson.M{"$set": bson.M{"name": name, "price": price, "cost": cost}}
	result, err := r.db.Collection(collProducts).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Production records referencing it stay
// behind and fall out of aggregation as dangling references.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.db.Collection(collProducts).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
