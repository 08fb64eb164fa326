package relational

import (
	"strings"

	"gorm.io/gorm"

	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// Spec is a composable query predicate applied with gorm's Scopes.
type Spec func(*gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching value as a literal substring.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func NameContains(value string) Spec {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`tb_product.name LIKE ? ESCAPE '\'`, containsPattern(value))
	}
}

func DescriptionContains(value string) Spec {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`tb_product.description LIKE ? ESCAPE '\'`, containsPattern(value))
	}
}

func PriceEquals(value float64) Spec {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tb_product.price = ?", value)
	}
}

// CategoryNameContains matches products whose category name contains value.
func CategoryNameContains(value string) Spec {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN tb_category ON tb_category.id = tb_product.category_id").
			Where(`tb_category.name LIKE ? ESCAPE '\'`, containsPattern(value))
	}
}

// And combines specs conjunctively. Nil specs are skipped, so And() and
// And(nil) match everything.
func And(specs ...Spec) Spec {
	present := make([]Spec, 0, len(specs))
	for _, s := range specs {
		if s != nil {
			present = append(present, s)
		}
	}
	return func(db *gorm.DB) *gorm.DB {
		for _, s := range present {
			db = s(db)
		}
		return db
	}
}

// ProductSpec translates a filter into a spec with one predicate per present
// field. Empty strings and a nil price are absent.
func ProductSpec(f ports.ProductFilter) Spec {
	var specs []Spec
	if f.Name != "" {
		specs = append(specs, NameContains(f.Name))
	}
	if f.Description != "" {
		specs = append(specs, DescriptionContains(f.Description))
	}
	if f.Price != nil {
		specs = append(specs, PriceEquals(*f.Price))
	}
	if f.Category != "" {
		specs = append(specs, CategoryNameContains(f.Category))
	}
	return And(specs...)
}
