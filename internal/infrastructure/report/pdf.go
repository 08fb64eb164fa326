package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

const (
	pdfFont       = "Helvetica"
	pdfRowHeight  = 7.0
	pdfCellMargin = 2.0
)

// writePDF lays the table out on A4 portrait pages with equal-width columns.
// The core fonts are cp1252, so text goes through a translator for accents.
func writePDF(w io.Writer, table domain.ReportTable) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(table.Title, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 10, tr(table.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(table.Columns) == 0 {
		return pdf.Output(w)
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(table.Columns))

	header := func() {
		pdf.SetFont(pdfFont, "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range table.Columns {
			pdf.CellFormat(colW, pdfRowHeight+1, tr(col), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 9)
	}

	header()
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range table.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-bottom {
			pdf.AddPage()
			header()
		}
		for _, cell := range row {
			pdf.CellFormat(colW, pdfRowHeight, fitText(pdf, tr(cell), colW-pdfCellMargin), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// fitText truncates s with an ellipsis so it fits in width. s is already
// translated to cp1252, one byte per glyph, so it is cut by bytes.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	b := []byte(s)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+"...") > width {
		b = b[:len(b)-1]
	}
	return string(b) + "..."
}
