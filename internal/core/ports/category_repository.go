package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	// Save overwrites the stored row with every field of c.
	Save(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindAll(ctx context.Context, sort Sort) ([]*domain.Category, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
