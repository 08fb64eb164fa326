package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

const (
	productListSubject    = "Relatório de Produtos - Anexo PDF"
	productListAttachment = "relatorio-produtos.pdf"
	productListBody       = "Prezado(a),\n\nSegue em anexo o relatório completo com a lista de todos os produtos.\n\nAtenciosamente,\nCatálogo de Produtos"
)

// EmailService mails the product list as a PDF.
type EmailService struct {
	products ports.ProductRepository
	exporter ports.ReportExporter
	mailer   ports.Mailer
	audit    ports.DispatchLog
	logger   zerolog.Logger
}

// NewEmailService wires the email use case. A nil audit log disables auditing.
func NewEmailService(
	products ports.ProductRepository,
	exporter ports.ReportExporter,
	mailer ports.Mailer,
	audit ports.DispatchLog,
	logger zerolog.Logger,
) *EmailService {
	return &EmailService{products: products, exporter: exporter, mailer: mailer, audit: audit, logger: logger}
}

// SendProductList renders every product into a PDF and mails it to destination.
func (s *EmailService) SendProductList(ctx context.Context, destination string) error {
	products, err := s.products.FindAll(ctx, ports.ProductFilter{}, ports.Sort{Field: "name"})
	if err != nil {
		return s.finish(ctx, destination, 0, fmt.Errorf("load products: %w", err))
	}

	var pdf bytes.Buffer
	if err := s.exporter.Export(&pdf, domain.ReportPDF, productListReport.fill(products)); err != nil {
		return s.finish(ctx, destination, len(products), fmt.Errorf("render product list: %w", err))
	}

	err = s.mailer.Send(ctx, ports.MailMessage{
		To:      destination,
		Subject: productListSubject,
		Body:    productListBody,
		Attachments: []ports.Attachment{
			{Filename: productListAttachment, Content: pdf.Bytes()},
		},
	})
	if err != nil {
		err = fmt.Errorf("send email: %w", err)
	}
	return s.finish(ctx, destination, len(products), err)
}

// finish logs and audits the attempt, then hands back sendErr unchanged.
func (s *EmailService) finish(ctx context.Context, destination string, count int, sendErr error) error {
	if sendErr != nil {
		s.logger.Error().Err(sendErr).Str("destination", destination).Msg("product list email failed")
	} else {
		s.logger.Info().Str("destination", destination).Int("products", count).Msg("product list email sent")
	}

	if s.audit == nil {
		return sendErr
	}

	record := ports.EmailDispatch{
		Destination: destination,
		Subject:     productListSubject,
		Products:    count,
		Success:     sendErr == nil,
		SentAt:      utcNow(),
	}
	if sendErr != nil {
		record.Error = sendErr.Error()
	}
	if err := s.audit.Record(ctx, record); err != nil {
		s.logger.Warn().Err(err).Str("destination", destination).Msg("failed to record email dispatch")
	}
	return sendErr
}
