package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/paydash/payment-tracker/internal/core/domain"
	"github.com/paydash/payment-tracker/internal/core/ports"
)

// adminUsername is the seeded default account. Its password comes from
// configuration; when unset a random one is generated at startup.
const adminUsername = "admin"

// AuthService implements login, user creation, and admin seeding.
type AuthService struct {
	repo          ports.UserRepository
	tokens        ports.TokenService
	adminPassword string
	logger        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, adminPassword string, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, adminPassword: adminPassword, logger: logger}
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// CreateUser hashes the password and persists a new user. An empty role
// defaults to viewer.
func (s *AuthService) CreateUser(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleViewer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// SeedAdmin creates the default admin account if it does not exist yet.
// Safe to call on every startup.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	_, err := s.repo.FindByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	password := s.adminPassword
	if password == "" {
		generated, err := randomPassword()
		if err != nil {
			return err
		}
		password = generated
		// Logged once so the operator can capture it; rotate after first login.
		s.logger.Warn().
			Str("username", adminUsername).
			Str("password", password).
			Msg("ADMIN_PASSWORD not set, generated a random admin password")
	}

	if _, err := s.CreateUser(ctx, adminUsername, password, domain.RoleAdmin); err != nil {
		// Lost the race against a concurrent replica; the account exists.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("username", adminUsername).Msg("seeded default admin user")
	return nil
}

func randomPassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
