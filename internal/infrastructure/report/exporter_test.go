package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

func sampleTable() domain.ReportTable {
	return domain.ReportTable{
		Title:   "Relatório de Produtos",
		Columns: []string{"Nome", "Descrição", "Preço"},
		Rows: [][]string{
			{"Cabo USB", "Cabo USB-C, 1 metro", "19.90"},
			{"Notebook", strings.Repeat("descrição longa ", 20), "3500.00"},
		},
	}
}

func TestExporter_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, domain.ReportPDF, sampleTable()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is not a PDF")
}

func TestExporter_PDF_ManyRowsPaginates(t *testing.T) {
	table := sampleTable()
	for i := 0; i < 200; i++ {
		table.Rows = append(table.Rows, []string{"Item", "Descrição", "1.00"})
	}

	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, domain.ReportPDF, table))
	pages := bytes.Count(buf.Bytes(), []byte("/Type /Page")) - bytes.Count(buf.Bytes(), []byte("/Type /Pages"))
	assert.Greater(t, pages, 1)
}

func TestExporter_PDF_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, domain.ReportPDF, domain.ReportTable{Title: "Vazio"}))
	assert.NotZero(t, buf.Len())
}

func TestExporter_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, domain.ReportXLSX, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(xlsxSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Relatório de Produtos", title)

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Nome", "Descrição", "Preço"}, rows[2])
	assert.Equal(t, []string{"Cabo USB", "Cabo USB-C, 1 metro", "19.90"}, rows[3])
}

func TestExporter_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().Export(&buf, domain.ReportCSV, sampleTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Nome", "Descrição", "Preço"}, records[0])
	assert.Equal(t, "Cabo USB-C, 1 metro", records[1][1])
}

func TestExporter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewExporter().Export(&buf, domain.ReportFormat("docx"), sampleTable())
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
