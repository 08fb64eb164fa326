package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// UserRepository defines persistence operations for users. Reads return users
// with their roles loaded; writes replace the stored role set with u.Roles.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Save(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context, sort Sort) ([]*domain.User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleRepository resolves seeded roles.
type RoleRepository interface {
	FindByAuthority(ctx context.Context, authority string) (*domain.Role, error)
}
