package relational

import (
	"gorm.io/gorm/clause"

	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

var (
	categoryColumns = map[string]string{
		"id":          "id",
		"name":        "name",
		"description": "description",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}
	productColumns = map[string]string{
		"id":          "id",
		"name":        "name",
		"description": "description",
		"price":       "price",
		"imgUrl":      "img_url",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}
	userColumns = map[string]string{
		"id":        "id",
		"firstName": "first_name",
		"lastName":  "last_name",
		"email":     "email",
	}
)

// orderBy resolves a sort request against the sortable columns of table.
// Unknown fields order by id.
func orderBy(table string, columns map[string]string, s ports.Sort) clause.OrderByColumn {
	name, ok := columns[s.Field]
	if !ok {
		name = "id"
	}
	return clause.OrderByColumn{Column: clause.Column{Table: table, Name: name}, Desc: s.Desc}
}
