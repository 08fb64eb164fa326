package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// idParam parses the {id} path parameter. A malformed id cannot name an
// existing resource, so it is rejected before any service call.
func idParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id must be a valid UUID")
	}
	return id, nil
}

// productFilterFromQuery reads the optional product search criteria.
// Empty values are absent.
func productFilterFromQuery(c echo.Context) (ports.ProductFilter, error) {
	f := ports.ProductFilter{
		Name:        c.QueryParam("nameProduct"),
		Description: c.QueryParam("descriptionProduct"),
		Category:    c.QueryParam("category"),
	}
	if raw := strings.TrimSpace(c.QueryParam("priceProduct")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, badRequest("priceProduct must be a number")
		}
		f.Price = &price
	}
	return f, nil
}

func reportFormatFromQuery(c echo.Context) domain.ReportFormat {
	return domain.ParseReportFormat(c.QueryParam("fileType"))
}

func sendReport(c echo.Context, file *ports.ReportFile) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
