package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/api/metrics"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

var categorySortFields = []string{"id", "name", "description", "createdAt", "updatedAt"}

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
	reports ports.ReportService
}

func NewCategoryHandler(service ports.CategoryService, reports ports.ReportService) *CategoryHandler {
	return &CategoryHandler{service: service, reports: reports}
}

// List handles GET /category.
//
// @Summary      List categories
// @Tags         category
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number, zero based"
// @Param        size  query     int     false  "Page size (max 100)"
// @Param        sort  query     string  false  "Sort, e.g. name,desc"
// @Success      200   {object}  Page[categoryResponse]
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	req, err := parsePageRequest(c, categorySortFields...)
	if err != nil {
		return err
	}

	categories, err := h.service.FindAll(c.Request().Context(), req.Sort)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Paginate(mapAll(categories, toCategoryResponse), req.Page, req.Size))
}

// Get handles GET /category/:id.
//
// @Summary      Get a category by id
// @Tags         category
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /category/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	category, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Create handles POST /category.
//
// @Summary      Create a category
// @Tags         category
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	category, err := h.service.Insert(c.Request().Context(), toCategoryInput(req))
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("category").Inc()

	c.Response().Header().Set(echo.HeaderLocation, "/category/"+category.ID.String())
	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// Update handles PUT /category. The id travels in the body.
//
// @Summary      Update a category
// @Tags         category
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCategoryRequest  true  "Category"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /category [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	category, err := h.service.Update(c.Request().Context(), toCategoryUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Delete handles DELETE /category/:id. Products of the category go with it.
//
// @Summary      Delete a category
// @Tags         category
// @Security     BearerAuth
// @Param        id   path  string  true  "Category id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Report handles GET /category/report.
//
// @Summary      Export every category
// @Tags         category
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        fileType  query  string  false  "pdf (default), xlsx or csv"
// @Success      200
// @Failure      500  {object}  errorResponse
// @Router       /category/report [get]
func (h *CategoryHandler) Report(c echo.Context) error {
	format := reportFormatFromQuery(c)
	start := time.Now()

	file, err := h.reports.CategoryReport(c.Request().Context(), format)
	if err != nil {
		return err
	}
	metrics.ReportGenerationDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	metrics.ReportsGeneratedTotal.WithLabelValues("category", string(format)).Inc()
	return sendReport(c, file)
}
