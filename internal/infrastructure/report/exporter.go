// Package report renders filled report tables as PDF, XLSX or CSV documents.
package report

import (
	"fmt"
	"io"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// Exporter implements ports.ReportExporter.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Export(w io.Writer, format domain.ReportFormat, table domain.ReportTable) error {
	var err error
	switch format {
	case domain.ReportPDF:
		err = writePDF(w, table)
	case domain.ReportXLSX:
		err = writeXLSX(w, table)
	case domain.ReportCSV:
		err = writeCSV(w, table)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}
