package domain

import "strings"

// ReportFormat is the output kind of an exported report.
type ReportFormat string

const (
	ReportPDF  ReportFormat = "pdf"
	ReportXLSX ReportFormat = "xlsx"
	ReportCSV  ReportFormat = "csv"
)

// ParseReportFormat maps a fileType query value to a format. Anything other
// than xlsx or csv (case-insensitive) falls back to PDF.
func ParseReportFormat(s string) ReportFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx":
		return ReportXLSX
	case "csv":
		return ReportCSV
	default:
		return ReportPDF
	}
}

// ContentType is the MIME type served for the format.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ReportCSV:
		return "text/csv"
	default:
		return "application/pdf"
	}
}

// Filename is the attachment name sent in Content-Disposition.
func (f ReportFormat) Filename() string {
	switch f {
	case ReportXLSX, ReportCSV:
		return "relatorio." + string(f)
	default:
		return "relatorio.pdf"
	}
}

// ReportTable is a filled report template: a title, a header row and data rows
// already formatted as text.
type ReportTable struct {
	Title   string
	Columns []string
	Rows    [][]string
}
