package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

const (
	xlsxSheet     = "Relatorio"
	xlsxHeaderRow = 3
	xlsxColWidth  = 25
)

// writeXLSX writes the title in a merged first row, the header on row 3 and
// one data row per table row below it.
func writeXLSX(w io.Writer, table domain.ReportTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(xlsxSheet, "A1", table.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	cols := len(table.Columns)
	if cols == 0 {
		_, err := f.WriteTo(w)
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	if cols > 1 {
		if err := f.MergeCell(xlsxSheet, "A1", lastCol+"1"); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(xlsxSheet, "A", lastCol, xlsxColWidth); err != nil {
		return err
	}

	headerStart, _ := excelize.CoordinatesToCellName(1, xlsxHeaderRow)
	headerEnd, _ := excelize.CoordinatesToCellName(cols, xlsxHeaderRow)
	headers := append([]string(nil), table.Columns...)
	if err := f.SetSheetRow(xlsxSheet, headerStart, &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, headerStart, headerEnd, headerStyle); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, xlsxHeaderRow+1+i)
		if err != nil {
			return err
		}
		values := append([]string(nil), row...)
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}
