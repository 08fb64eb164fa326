package relational

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	opts := Options{Driver: DriverSQLite, DSN: ":memory:"}
	db, err := Open(ctx, opts, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, Prepare(ctx, db, opts, zerolog.Nop()))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func createCategory(t *testing.T, repo *CategoryRepository, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name, Description: "Categoria " + name, CreatedAt: testNow}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func createProduct(t *testing.T, repo *ProductRepository, name string, price float64, category *domain.Category) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:        name,
		Description: "Descricao " + name,
		Price:       price,
		URL:         "http://img/" + name,
		CreatedAt:   testNow,
		CategoryID:  category.ID,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}
