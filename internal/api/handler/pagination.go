package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	defaultSortBy   = "id"
)

// Page is one slice of a listing plus the totals of the whole result.
type Page[T any] struct {
	Content          []T  `json:"content"`
	Number           int  `json:"number"`
	Size             int  `json:"size"`
	TotalElements    int  `json:"total_elements"`
	TotalPages       int  `json:"total_pages"`
	NumberOfElements int  `json:"number_of_elements"`
	First            bool `json:"first"`
	Last             bool `json:"last"`
	Empty            bool `json:"empty"`
}

// Paginate returns items[page*size : page*size+size] clamped to the slice.
// Offsets past the end give an empty page. size must be positive.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)

	start := total
	if page <= total/size {
		start = min(page*size, total)
	}
	end := min(start+size, total)

	content := make([]T, end-start)
	copy(content, items[start:end])

	totalPages := (total + size - 1) / size
	return Page[T]{
		Content:          content,
		Number:           page,
		Size:             size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            page == 0,
		Last:             page >= totalPages-1,
		Empty:            len(content) == 0,
	}
}

type pageRequest struct {
	Page int
	Size int
	Sort ports.Sort
}

// parsePageRequest reads page, size and sort=<field>[,asc|desc]. sortable
// lists the fields a listing may be ordered by.
func parsePageRequest(c echo.Context, sortable ...string) (pageRequest, error) {
	req := pageRequest{Page: 0, Size: defaultPageSize, Sort: ports.Sort{Field: defaultSortBy}}

	err := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("size", &req.Size).
		BindError()
	if err != nil {
		return req, badRequest("page and size must be integers")
	}
	if req.Page < 0 {
		return req, badRequest("page must not be negative")
	}
	if req.Size <= 0 {
		return req, badRequest("size must be positive")
	}
	if req.Size > maxPageSize {
		req.Size = maxPageSize
	}

	raw := strings.TrimSpace(c.QueryParam("sort"))
	if raw == "" {
		return req, nil
	}
	field, dir, _ := strings.Cut(raw, ",")
	field = strings.TrimSpace(field)
	if !contains(sortable, field) {
		return req, badRequest("cannot sort by " + field)
	}
	req.Sort.Field = field

	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
	case "desc":
		req.Sort.Desc = true
	default:
		return req, badRequest("sort direction must be asc or desc")
	}
	return req, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
