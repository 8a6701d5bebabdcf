// Package mongodb is the persistence layer. One Repository wraps a client
// and the per-collection methods live in their own files.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Collection names.
const (
	collUsers         = "users"
	collBusinesses    = "businesses"
	collProducts      = "products"
	collProduction    = "production"
	collFixedCosts    = "fixed_costs"
	collSales         = "sales"
	collEvents        = "events"
	collWeeklyReports = "weekly_reports"
)

// Repository exposes the MongoDB-backed storage operations.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
