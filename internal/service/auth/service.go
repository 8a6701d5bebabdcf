// Package auth implements account registration and credential verification.
// Token issuance is delegated to pkg/jwtutil.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/repository/mongodb"
	"github.com/ceomapp/ceom/pkg/jwtutil"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid registration input")
)

// UserStore is the persistence surface the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// Service handles registration and login.
type Service struct {
	store  UserStore
	tokens *jwtutil.JWTUtil
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new auth service instance.
func NewService(store UserStore, tokens *jwtutil.JWTUtil, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a new account with a bcrypt password hash. An empty role
// defaults to emprendedor; any value other than the two known roles is
// rejected.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || len(in.Password) < 6 {
		return models.User{}, ErrInvalidInput
	}

	switch in.Role {
	case "":
		in.Role = models.RoleEmprendedor
	case models.RoleAdmin, models.RoleEmprendedor:
	default:
		return models.User{}, ErrInvalidInput
	}

	if _, err := s.store.GetUserByEmail(ctx, in.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, mongodb.ErrNotFound) {
		return models.User{}, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

// Login verifies the credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, mongodb.ErrNotFound) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
