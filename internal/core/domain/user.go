package domain

import "github.com/google/uuid"

// Role authorities recognised by the access rules.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Role is a granted authority. Roles are seeded by migration, never created through the API.
type Role struct {
	ID        uuid.UUID
	Authority string
}

// User models an authenticated actor in the system.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Roles        []Role
}

// Authorities returns the authority labels of the user's roles.
func (u *User) Authorities() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r.Authority)
	}
	return out
}

// HasAuthority reports whether any of the user's roles carries authority.
func (u *User) HasAuthority(authority string) bool {
	for _, r := range u.Roles {
		if r.Authority == authority {
			return true
		}
	}
	return false
}
