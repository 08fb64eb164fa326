package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/api/metrics"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

const (
	emailSentMessage   = "E-mail enviado com sucesso!"
	emailFailedMessage = "Erro ao enviar e-mail: "
)

var productSortFields = []string{"id", "name", "description", "price", "imgUrl", "createdAt", "updatedAt"}

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
	reports ports.ReportService
	email   ports.EmailService
}

func NewProductHandler(service ports.ProductService, reports ports.ReportService, email ports.EmailService) *ProductHandler {
	return &ProductHandler{service: service, reports: reports, email: email}
}

// List handles GET /product. Every filter is optional.
//
// @Summary      Search products
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Param        nameProduct         query     string  false  "Name contains"
// @Param        descriptionProduct  query     string  false  "Description contains"
// @Param        priceProduct        query     number  false  "Exact price"
// @Param        category            query     string  false  "Category name contains"
// @Param        page                query     int     false  "Page number, zero based"
// @Param        size                query     int     false  "Page size (max 100)"
// @Param        sort                query     string  false  "Sort, e.g. price,desc"
// @Success      200                 {object}  Page[productResponse]
// @Failure      400                 {object}  errorResponse
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	req, err := parsePageRequest(c, productSortFields...)
	if err != nil {
		return err
	}
	filter, err := productFilterFromQuery(c)
	if err != nil {
		return err
	}

	products, err := h.service.FindAll(c.Request().Context(), filter, req.Sort)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Paginate(mapAll(products, toProductResponse), req.Page, req.Size))
}

// Get handles GET /product/:id.
//
// @Summary      Get a product by id
// @Tags         product
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	product, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /product.
//
// @Summary      Create a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	product, err := h.service.Insert(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("product").Inc()

	c.Response().Header().Set(echo.HeaderLocation, "/product/"+product.ID.String())
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /product. The id travels in the body.
//
// @Summary      Update a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProductRequest  true  "Product"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /product [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	product, err := h.service.Update(c.Request().Context(), toProductUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /product/:id.
//
// @Summary      Delete a product
// @Tags         product
// @Security     BearerAuth
// @Param        id   path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Report handles GET /product/report. It honours the listing filters.
//
// @Summary      Export products
// @Tags         product
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        fileType            query  string  false  "pdf (default), xlsx or csv"
// @Param        nameProduct         query  string  false  "Name contains"
// @Param        descriptionProduct  query  string  false  "Description contains"
// @Param        priceProduct        query  number  false  "Exact price"
// @Param        category            query  string  false  "Category name contains"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /product/report [get]
func (h *ProductHandler) Report(c echo.Context) error {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		return err
	}
	format := reportFormatFromQuery(c)
	start := time.Now()

	file, err := h.reports.ProductReport(c.Request().Context(), filter, format)
	if err != nil {
		return err
	}
	metrics.ReportGenerationDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	metrics.ReportsGeneratedTotal.WithLabelValues("product", string(format)).Inc()
	return sendReport(c, file)
}

// SendEmail handles POST /product/enviar-email. Delivery failures are
// reported in the text body with status 200.
//
// @Summary      Email the product list as PDF
// @Tags         product
// @Produce      plain
// @Security     BearerAuth
// @Param        destination  query     string  true  "Recipient address"
// @Success      200          {string}  string
// @Failure      422          {object}  errorResponse
// @Router       /product/enviar-email [post]
func (h *ProductHandler) SendEmail(c echo.Context) error {
	var req sendEmailRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return badRequest("invalid query")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	if err := h.email.SendProductList(c.Request().Context(), req.Destination); err != nil {
		metrics.EmailDispatchTotal.WithLabelValues("failed").Inc()
		return c.String(http.StatusOK, emailFailedMessage+err.Error())
	}
	metrics.EmailDispatchTotal.WithLabelValues("sent").Inc()
	return c.String(http.StatusOK, emailSentMessage)
}
