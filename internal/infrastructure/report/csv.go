package report

import (
	"encoding/csv"
	"io"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// writeCSV writes the header followed by the data rows. The title is not part
// of the CSV output.
func writeCSV(w io.Writer, table domain.ReportTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return err
	}
	return cw.Error()
}
