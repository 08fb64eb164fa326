package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Name is unique across the catalog.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	// UpdatedAt stays nil until the first update.
	UpdatedAt *time.Time
}
