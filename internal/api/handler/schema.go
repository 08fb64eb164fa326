package handler

import (
	"time"

	"github.com/google/uuid"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Category ---

type createCategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=3,max=50"`
}

type updateCategoryRequest struct {
	ID          string `json:"id"          validate:"required,uuid"`
	Name        string `json:"name"        validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=3,max=50"`
}

type categoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// --- Product ---

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=3,max=50"`
	Description string   `json:"description" validate:"required,min=5,max=150"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	ImgURL      string   `json:"img_url"     validate:"required,min=5,max=50"`
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
}

type updateProductRequest struct {
	ID          string   `json:"id"          validate:"required,uuid"`
	Name        string   `json:"name"        validate:"required,min=3,max=50"`
	Description string   `json:"description" validate:"required,min=5,max=150"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	ImgURL      string   `json:"img_url"     validate:"required,min=5,max=50"`
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
}

type productResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	ImgURL      string           `json:"img_url"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
	Category    categoryResponse `json:"category"`
}

type sendEmailRequest struct {
	Destination string `query:"destination" validate:"required,email"`
}

// --- User ---

type createUserRequest struct {
	FirstName string   `json:"first_name" validate:"required,max=50"`
	LastName  string   `json:"last_name"  validate:"required,max=50"`
	Email     string   `json:"email"      validate:"required,email,max=100"`
	Password  string   `json:"password"   validate:"required,min=6,max=72"`
	Roles     []string `json:"roles"      validate:"omitempty,dive,required"`
}

type updateUserRequest struct {
	ID        string   `json:"id"         validate:"required,uuid"`
	FirstName string   `json:"first_name" validate:"required,max=50"`
	LastName  string   `json:"last_name"  validate:"required,max=50"`
	Email     string   `json:"email"      validate:"required,email,max=100"`
	Password  string   `json:"password"   validate:"omitempty,min=6,max=72"`
	Roles     []string `json:"roles"      validate:"omitempty,dive,required"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Name      string `json:"name"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}
