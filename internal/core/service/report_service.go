package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// ReportService fills the fixed category and product report templates and
// exports them. Output is fully rendered before it is returned, so a failed
// export never yields a partial file.
type ReportService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	exporter   ports.ReportExporter
	logger     zerolog.Logger
}

func NewReportService(
	categories ports.CategoryRepository,
	products ports.ProductRepository,
	exporter ports.ReportExporter,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{categories: categories, products: products, exporter: exporter, logger: logger}
}

func (s *ReportService) CategoryReport(ctx context.Context, format domain.ReportFormat) (*ports.ReportFile, error) {
	categories, err := s.categories.FindAll(ctx, ports.Sort{Field: "name"})
	if err != nil {
		return nil, fmt.Errorf("category report: %w", err)
	}
	return s.export("category", format, categoryReport.fill(categories))
}

func (s *ReportService) ProductReport(ctx context.Context, filter ports.ProductFilter, format domain.ReportFormat) (*ports.ReportFile, error) {
	products, err := s.products.FindAll(ctx, filter, ports.Sort{Field: "name"})
	if err != nil {
		return nil, fmt.Errorf("product report: %w", err)
	}
	return s.export("product", format, productReport.fill(products))
}

func (s *ReportService) export(entity string, format domain.ReportFormat, table domain.ReportTable) (*ports.ReportFile, error) {
	var buf bytes.Buffer
	if err := s.exporter.Export(&buf, format, table); err != nil {
		s.logger.Error().Err(err).Str("entity", entity).Str("format", string(format)).Msg("report export failed")
		return nil, fmt.Errorf("%s report: export %s: %w", entity, format, err)
	}

	s.logger.Debug().
		Str("entity", entity).
		Str("format", string(format)).
		Int("rows", len(table.Rows)).
		Int("bytes", buf.Len()).
		Msg("report generated")

	return &ports.ReportFile{
		ContentType: format.ContentType(),
		Filename:    format.Filename(),
		Data:        buf.Bytes(),
	}, nil
}
