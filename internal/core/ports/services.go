package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// CategoryInput carries the mutable fields of a category. ID is ignored on insert.
type CategoryInput struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// ProductInput carries the mutable fields of a product. ID is ignored on insert.
type ProductInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	URL         string
	CategoryID  uuid.UUID
}

// UserInput carries the mutable fields of a user. Password is plaintext; on
// update an empty Password keeps the stored hash. Roles are authority labels.
type UserInput struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Password  string
	Roles     []string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string
	User  *domain.User
}

// ReportFile is a rendered report ready to be served.
type ReportFile struct {
	ContentType string
	Filename    string
	Data        []byte
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Insert(ctx context.Context, in CategoryInput) (*domain.Category, error)
	FindAll(ctx context.Context, sort Sort) ([]*domain.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Update(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Insert(ctx context.Context, in ProductInput) (*domain.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, sort Sort) ([]*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService defines use-case operations for users, including login.
type UserService interface {
	Insert(ctx context.Context, in UserInput) (*domain.User, error)
	FindAll(ctx context.Context, sort Sort) ([]*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, in UserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// ReportService renders the category and product reports.
type ReportService interface {
	CategoryReport(ctx context.Context, format domain.ReportFormat) (*ReportFile, error)
	ProductReport(ctx context.Context, filter ProductFilter, format domain.ReportFormat) (*ReportFile, error)
}

// EmailService mails the product list as a PDF attachment.
type EmailService interface {
	SendProductList(ctx context.Context, destination string) error
}
