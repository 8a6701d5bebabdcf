package models

import "time"

// Role labels supported by the platform.
const (
	RoleAdmin       = "admin"
	RoleEmprendedor = "emprendedor"
)

// User represents an account stored in the users collection.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
