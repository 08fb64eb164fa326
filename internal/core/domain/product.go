package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Every product belongs to exactly one category.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	URL         string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	CategoryID  uuid.UUID
	// Category is populated by reads; writes only look at CategoryID.
	Category Category
}
