package ports

import (
	"context"

	"github.com/paydash/payment-tracker/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	// Create inserts a new user and returns the stored record with its
	// assigned ID. Returns domain.ErrUserExists on a duplicate username.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns all users ordered by ID ascending.
	List(ctx context.Context) ([]*domain.User, error)
}
