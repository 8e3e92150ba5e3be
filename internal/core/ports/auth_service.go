package ports

import (
	"context"

	"github.com/paydash/payment-tracker/internal/core/domain"
)

// AuthService implements login, user management, and admin seeding.
type AuthService interface {
	// Login verifies the credentials and returns a bearer token plus the
	// authenticated user. Fails with domain.ErrInvalidCredentials for an
	// unknown username or a wrong password.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CreateUser hashes the password and persists a new user. Fails with
	// domain.ErrUserExists when the username is taken.
	CreateUser(ctx context.Context, username, password, role string) (*domain.User, error)
	// ListUsers returns all users. Password hashes are never serialized.
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// SeedAdmin idempotently creates the default admin account when no
	// user with the admin username exists yet.
	SeedAdmin(ctx context.Context) error
}
