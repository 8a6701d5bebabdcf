// Package jwtutil issues and validates the HS256 bearer tokens used by the
// API. Claims carry the user identity plus the role label the authorization
// middleware checks against.
package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Config holds signing parameters.
type Config struct {
	SigningKey      string
	ExpirationHours int
}

// UserClaims are the JWT claims embedded in every issued token.
type UserClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil performs token operations for one signing configuration.
type JWTUtil struct {
	config Config
}

// New creates a JWT utility with the given configuration.
func New(config Config) *JWTUtil {
	return &JWTUtil{config: config}
}

// GenerateToken creates a signed token for the user identity.
func (j *JWTUtil) GenerateToken(userID, email, role string) (string, error) {
	if j.config.SigningKey == "" {
		return "", errors.New("jwt signing key not configured")
	}

	now := time.Now()
	claims := UserClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(j.config.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.SigningKey))
}

// ValidateToken parses and verifies a token string.
func (j *JWTUtil) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.config.SigningKey), nil
		},
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
