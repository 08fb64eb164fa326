package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// ProductService implements product management.
type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
	now        func() time.Time
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, logger: logger, now: utcNow}
}

// Insert creates a product under an existing category.
func (s *ProductService) Insert(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	category, err := s.category(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		URL:         in.URL,
		CategoryID:  category.ID,
		Category:    *category,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create product")
		return nil, fmt.Errorf("insert product: %w", err)
	}

	s.logger.Info().
		Str("product_id", p.ID.String()).
		Str("category_id", category.ID.String()).
		Msg("product created")
	return p, nil
}

// FindAll returns the products matching filter. An empty filter matches everything.
func (s *ProductService) FindAll(ctx context.Context, filter ports.ProductFilter, sort ports.Sort) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx, filter, sort)
}

func (s *ProductService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update copies the mutable fields of in onto the stored product and saves it.
func (s *ProductService) Update(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	current, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	category := &current.Category
	if in.CategoryID != current.CategoryID {
		if category, err = s.category(ctx, in.CategoryID); err != nil {
			return nil, fmt.Errorf("update product: %w", err)
		}
	}

	applyProductUpdate(current, in, *category, s.now())
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.Info().Str("product_id", current.ID.String()).Msg("product updated")
	return current, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}

// category resolves the referenced category, turning a missing one into
// ErrUnknownCategory so it is reported as a bad reference rather than a 404.
func (s *ProductService) category(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, domain.ErrUnknownCategory
	}
	return c, err
}

func applyProductUpdate(dst *domain.Product, in ports.ProductInput, category domain.Category, now time.Time) {
	dst.Name = in.Name
	dst.Description = in.Description
	dst.Price = in.Price
	dst.URL = in.URL
	dst.CategoryID = category.ID
	dst.Category = category
	dst.UpdatedAt = &now
}
