package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// ProductRepository defines persistence operations for products. Reads return
// products with their Category loaded.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	Save(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// FindAll returns every product matching filter, ordered by sort.
	FindAll(ctx context.Context, filter ProductFilter, sort Sort) ([]*domain.Product, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
