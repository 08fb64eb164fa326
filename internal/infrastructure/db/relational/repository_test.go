package relational

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	c := createCategory(t, repo, "Cabos")
	assert.NotEqual(t, uuid.Nil, c.ID)

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cabos", got.Name)
	assert.True(t, got.CreatedAt.Equal(testNow))
	assert.Nil(t, got.UpdatedAt)

	updated := testNow.Add(time.Hour)
	got.Description = "Cabos e fios"
	got.UpdatedAt = &updated
	require.NoError(t, repo.Save(ctx, got))

	reloaded, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cabos e fios", reloaded.Description)
	require.NotNil(t, reloaded.UpdatedAt)
	assert.True(t, reloaded.UpdatedAt.Equal(updated))

	ok, err := repo.ExistsByName(ctx, "Cabos")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), domain.ErrCategoryNotFound)
}

func TestCategoryRepository_DuplicateNameBackstop(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))
	createCategory(t, repo, "Cabos")

	err := repo.Create(context.Background(), &domain.Category{Name: "Cabos", Description: "x", CreatedAt: testNow})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestCategoryRepository_DeleteCascadesProducts(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)
	ctx := context.Background()

	c := createCategory(t, categories, "Cabos")
	p := createProduct(t, products, "Cabo USB", 19.9, c)

	require.NoError(t, categories.Delete(ctx, c.ID))
	_, err := products.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepository_LoadsCategory(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)
	ctx := context.Background()

	cabos := createCategory(t, categories, "Cabos")
	tv := createCategory(t, categories, "TV")
	p := createProduct(t, products, "Cabo USB", 19.9, cabos)

	got, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cabos", got.Category.Name)
	assert.Equal(t, "http://img/Cabo USB", got.URL)

	got.CategoryID = tv.ID
	got.Category = *tv
	require.NoError(t, products.Save(ctx, got))

	moved, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "TV", moved.Category.Name)

	// saving a product must not touch its category
	cat, err := categories.FindByID(ctx, tv.ID)
	require.NoError(t, err)
	assert.Nil(t, cat.UpdatedAt)
}

func TestProductRepository_UnknownCategory(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	err := repo.Create(context.Background(), &domain.Product{
		Name:       "Cabo",
		CreatedAt:  testNow,
		CategoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestProductRepository_RandomIDNotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domain.ErrProductNotFound)

	ok, err := repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_RolesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	roles := NewRoleRepository(db)
	ctx := context.Background()

	admin, err := roles.FindByAuthority(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	user, err := roles.FindByAuthority(ctx, domain.RoleUser)
	require.NoError(t, err)

	u := &domain.User{
		FirstName:    "Alice",
		LastName:     "Souza",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Roles:        []domain.Role{*admin, *user},
	}
	require.NoError(t, users.Create(ctx, u))

	got, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{domain.RoleAdmin, domain.RoleUser}, got.Authorities())

	got.Roles = []domain.Role{*user}
	got.FirstName = "Alicia"
	require.NoError(t, users.Save(ctx, got))

	reloaded, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", reloaded.FirstName)
	assert.Equal(t, []string{domain.RoleUser}, reloaded.Authorities())

	all, err := users.FindAll(ctx, ports.Sort{Field: "email"})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, users.Delete(ctx, u.ID))
	_, err = users.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, users.Delete(ctx, u.ID), domain.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmailBackstop(t *testing.T) {
	users := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{FirstName: "A", LastName: "B", Email: "a@b.com", PasswordHash: "h"}))
	err := users.Create(ctx, &domain.User{FirstName: "C", LastName: "D", Email: "a@b.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	ok, err := users.ExistsByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRoleRepository_UnknownAuthority(t *testing.T) {
	_, err := NewRoleRepository(newTestDB(t)).FindByAuthority(context.Background(), "ROLE_ROOT")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestPrepare_SeedsRolesOnce(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, seedRoles(context.Background(), db))

	var n int64
	require.NoError(t, db.Model(&roleModel{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestMigrationURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/catalog?sslmode=disable", migrationURL("postgres://u:p@db:5432/catalog?sslmode=disable"))
	assert.Equal(t, "pgx5://db/catalog", migrationURL("postgresql://db/catalog"))
}
