package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ceomapp/ceom/internal/domain/models"
)

// CreateUser inserts a new user document.
func (r *Repository) CreateUser(ctx context.Context, user models.User) error {
	if _, err := r.db.Collection(collUsers).InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByEmail finds the user with the given email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.Collection(collUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// GetUser finds a user by id.
func (r *Repository) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := r.db.Collection(collUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user %s: %w", id, err)
	}
	return user, nil
}

// ListUsersByRole returns every user carrying the given role label.
func (r *Repository) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := r.db.Collection(collUsers).Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
