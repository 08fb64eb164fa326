package service

import (
	"strconv"
	"time"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

const dateLayout = "02/01/2006"

type reportColumn[T any] struct {
	header string
	value  func(T) string
}

// reportTemplate is a fixed report layout filled with a collection of T.
type reportTemplate[T any] struct {
	title   string
	columns []reportColumn[T]
}

func (t reportTemplate[T]) fill(items []T) domain.ReportTable {
	table := domain.ReportTable{
		Title:   t.title,
		Columns: make([]string, len(t.columns)),
		Rows:    make([][]string, 0, len(items)),
	}
	for i, col := range t.columns {
		table.Columns[i] = col.header
	}
	for _, item := range items {
		row := make([]string, len(t.columns))
		for i, col := range t.columns {
			row[i] = col.value(item)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

var categoryReport = reportTemplate[*domain.Category]{
	title: "Relatório de Categorias",
	columns: []reportColumn[*domain.Category]{
		{"Nome", func(c *domain.Category) string { return c.Name }},
		{"Descrição", func(c *domain.Category) string { return c.Description }},
		{"Criado em", func(c *domain.Category) string { return c.CreatedAt.Format(dateLayout) }},
		{"Atualizado em", func(c *domain.Category) string { return formatOptionalDate(c.UpdatedAt) }},
	},
}

var productReport = reportTemplate[*domain.Product]{
	title: "Relatório de Produtos",
	columns: []reportColumn[*domain.Product]{
		{"Nome", func(p *domain.Product) string { return p.Name }},
		{"Descrição", func(p *domain.Product) string { return p.Description }},
		{"Preço", func(p *domain.Product) string { return formatPrice(p.Price) }},
		{"URL", func(p *domain.Product) string { return p.URL }},
		{"Categoria", func(p *domain.Product) string { return p.Category.Name }},
	},
}

// productListReport is the summary attached to the product list email.
var productListReport = reportTemplate[*domain.Product]{
	title: "Relatório de Produtos",
	columns: []reportColumn[*domain.Product]{
		{"Nome do Produto", func(p *domain.Product) string { return p.Name }},
		{"Preço", func(p *domain.Product) string { return "R$" + formatPrice(p.Price) }},
	},
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
