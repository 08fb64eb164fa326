package handler

import (
	"github.com/google/uuid"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// --- Request → Service input ---
// Ids were validated as UUIDs already, so parse errors cannot happen here.

func toCategoryInput(req createCategoryRequest) ports.CategoryInput {
	return ports.CategoryInput{Name: req.Name, Description: req.Description}
}

func toCategoryUpdateInput(req updateCategoryRequest) ports.CategoryInput {
	return ports.CategoryInput{
		ID:          uuid.MustParse(req.ID),
		Name:        req.Name,
		Description: req.Description,
	}
}

func toProductInput(req createProductRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		URL:         req.ImgURL,
		CategoryID:  uuid.MustParse(req.CategoryID),
	}
}

func toProductUpdateInput(req updateProductRequest) ports.ProductInput {
	return ports.ProductInput{
		ID:          uuid.MustParse(req.ID),
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		URL:         req.ImgURL,
		CategoryID:  uuid.MustParse(req.CategoryID),
	}
}

func toUserInput(req createUserRequest) ports.UserInput {
	return ports.UserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Roles:     req.Roles,
	}
}

func toUserUpdateInput(req updateUserRequest) ports.UserInput {
	return ports.UserInput{
		ID:        uuid.MustParse(req.ID),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Roles:     req.Roles,
	}
}

// --- Domain → Response ---

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImgURL:      p.URL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Category:    toCategoryResponse(&p.Category),
	}
}

// toUserResponse never exposes the password hash.
func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Roles:     u.Authorities(),
	}
}

func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
