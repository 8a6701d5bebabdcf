package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ceomapp/ceom/internal/domain/models"
	"github.com/ceomapp/ceom/internal/repository/mongodb"
	"github.com/ceomapp/ceom/pkg/jwtutil"
)

type fakeUserStore struct {
	byEmail map[string]models.User
	created []models.User
	fail    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) error {
	if f.fail != nil {
		return f.fail
	}
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	if f.fail != nil {
		return models.User{}, f.fail
	}
	user, ok := f.byEmail[email]
	if !ok {
		return models.User{}, mongodb.ErrNotFound
	}
	return user, nil
}

func newService(store UserStore) *Service {
	tokens := jwtutil.New(jwtutil.Config{SigningKey: "test-secret", ExpirationHours: 1})
	return NewService(store, tokens, nil)
}

func TestRegister(t *testing.T) {
	t.Run("defaults to emprendedor and hashes the password", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newService(store)

		user, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Ana",
			Email:    "  Ana@Ceom.App ",
			Password: "hunter22",
		})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}

		if user.Role != models.RoleEmprendedor {
			t.Fatalf("role = %q, want emprendedor", user.Role)
		}
		if user.Email != "ana@ceom.app" {
			t.Fatalf("email not normalized: %q", user.Email)
		}
		if user.ID == "" || user.CreatedAt.IsZero() {
			t.Fatalf("missing id or timestamp: %+v", user)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")); err != nil {
			t.Fatalf("stored hash does not match password: %v", err)
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc := newService(newFakeUserStore())
		_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "abc"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		svc := newService(newFakeUserStore())
		_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "hunter22", Role: "superuser"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newService(store)

		if _, err := svc.Register(context.Background(), RegisterInput{Email: "ana@ceom.app", Password: "hunter22"}); err != nil {
			t.Fatalf("first register: %v", err)
		}
		_, err := svc.Register(context.Background(), RegisterInput{Email: "ana@ceom.app", Password: "hunter23"})
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		store := newFakeUserStore()
		store.fail = errors.New("db down")
		svc := newService(store)

		_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "hunter22"})
		if err == nil || errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newService(store)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@ceom.app",
		Password: "hunter22",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("valid credentials produce a verifiable token", func(t *testing.T) {
		token, user, err := svc.Login(context.Background(), "ANA@ceom.app", "hunter22")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if user.ID != registered.ID {
			t.Fatalf("user mismatch: %q vs %q", user.ID, registered.ID)
		}

		claims, err := jwtutil.New(jwtutil.Config{SigningKey: "test-secret", ExpirationHours: 1}).ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken: %v", err)
		}
		if claims.UserID != registered.ID || claims.Role != models.RoleAdmin {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "ana@ceom.app", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody@ceom.app", "hunter22")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
