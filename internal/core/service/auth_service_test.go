package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/paydash/payment-tracker/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func newAuthService(repo *stubUserRepo, adminPassword string) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, adminPassword, zerolog.Nop())
}

func TestAuthService_CreateUser_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	user, err := svc.CreateUser(context.Background(), "alice", "pass123", domain.RoleViewer)
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned ID")
	}
}

func TestAuthService_CreateUser_DefaultsToViewer(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	user, err := svc.CreateUser(context.Background(), "bob", "pass123", "")
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.Role != domain.RoleViewer {
		t.Fatalf("expected viewer role, got %s", user.Role)
	}
}

func TestAuthService_CreateUser_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	if _, err := svc.CreateUser(context.Background(), "bob", "pass123", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_CreateUser_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	if _, err := svc.CreateUser(context.Background(), "carol", "pass123", domain.RoleViewer); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "carol", "other", domain.RoleAdmin); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	if _, err := svc.CreateUser(context.Background(), "dave", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "dave", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "dave" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Username != "dave" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	_, _ = svc.CreateUser(context.Background(), "erin", "goodpass", domain.RoleViewer)
	if _, _, err := svc.Login(context.Background(), "erin", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	// An unknown username reads the same as a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SeedAdmin_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "hunter22")

	if err := svc.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := svc.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.users))
	}

	_, user, err := svc.Login(context.Background(), "admin", "hunter22")
	if err != nil {
		t.Fatalf("seeded admin cannot login: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}
}

func TestAuthService_SeedAdmin_GeneratesPasswordWhenUnset(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, "")

	if err := svc.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	// The generated password is random; the stored hash must not be empty
	// and must not match an empty password.
	if admin.PasswordHash == "" {
		t.Fatalf("expected a password hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("")) == nil {
		t.Fatalf("empty password must not verify")
	}
}
