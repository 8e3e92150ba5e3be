package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleViewer
}

// User models an authenticated actor in the system. PasswordHash is never
// serialized outward.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenClaims is the identity snapshot embedded in an issued token.
// The role is captured at issuance time and is not re-checked against the
// user store on each request; a role change takes effect at next login.
type TokenClaims struct {
	Username string
	Role     string
}
