package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// CategoryService implements category management.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger, now: utcNow}
}

// Insert creates a category. Names are unique.
func (s *CategoryService) Insert(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	exists, err := s.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	if exists {
		return nil, domain.ErrCategoryExists
	}

	c := &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create category")
		return nil, fmt.Errorf("insert category: %w", err)
	}

	s.logger.Info().Str("category_id", c.ID.String()).Str("name", c.Name).Msg("category created")
	return c, nil
}

func (s *CategoryService) FindAll(ctx context.Context, sort ports.Sort) ([]*domain.Category, error) {
	return s.repo.FindAll(ctx, sort)
}

func (s *CategoryService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Update copies the mutable fields of in onto the stored category and saves it.
func (s *CategoryService) Update(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	current, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != current.Name {
		exists, err := s.repo.ExistsByName(ctx, in.Name)
		if err != nil {
			return nil, fmt.Errorf("update category: %w", err)
		}
		if exists {
			return nil, domain.ErrCategoryExists
		}
	}

	applyCategoryUpdate(current, in, s.now())
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.logger.Info().Str("category_id", current.ID.String()).Msg("category updated")
	return current, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category deleted")
	return nil
}

// applyCategoryUpdate lists every mutable category field. ID and CreatedAt are
// never touched.
func applyCategoryUpdate(dst *domain.Category, in ports.CategoryInput, now time.Time) {
	dst.Name = in.Name
	dst.Description = in.Description
	dst.UpdatedAt = &now
}

func utcNow() time.Time {
	return time.Now().UTC()
}
