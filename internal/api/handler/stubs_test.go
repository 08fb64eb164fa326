package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// newTestEcho mirrors the router's validator and error envelope.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code, msg, _ := ErrorStatus(err)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
	return e
}

// serve runs h against a request and renders any returned error like the router does.
func serve(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, target string, body io.Reader, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// --- Service stubs ---

type stubCategoryService struct {
	insertFn   func(ctx context.Context, in ports.CategoryInput) (*domain.Category, error)
	findAllFn  func(ctx context.Context, sort ports.Sort) ([]*domain.Category, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	updateFn   func(ctx context.Context, in ports.CategoryInput) (*domain.Category, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCategoryService) Insert(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	return s.insertFn(ctx, in)
}

func (s *stubCategoryService) FindAll(ctx context.Context, sort ports.Sort) ([]*domain.Category, error) {
	return s.findAllFn(ctx, sort)
}

func (s *stubCategoryService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubCategoryService) Update(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	return s.updateFn(ctx, in)
}

func (s *stubCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

type stubProductService struct {
	insertFn   func(ctx context.Context, in ports.ProductInput) (*domain.Product, error)
	findAllFn  func(ctx context.Context, filter ports.ProductFilter, sort ports.Sort) ([]*domain.Product, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	updateFn   func(ctx context.Context, in ports.ProductInput) (*domain.Product, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *stubProductService) Insert(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.insertFn(ctx, in)
}

func (s *stubProductService) FindAll(ctx context.Context, filter ports.ProductFilter, sort ports.Sort) ([]*domain.Product, error) {
	return s.findAllFn(ctx, filter, sort)
}

func (s *stubProductService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProductService) Update(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, in)
}

func (s *stubProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

type stubUserService struct {
	insertFn   func(ctx context.Context, in ports.UserInput) (*domain.User, error)
	findAllFn  func(ctx context.Context, sort ports.Sort) ([]*domain.User, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateFn   func(ctx context.Context, in ports.UserInput) (*domain.User, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubUserService) Insert(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	return s.insertFn(ctx, in)
}

func (s *stubUserService) FindAll(ctx context.Context, sort ports.Sort) ([]*domain.User, error) {
	return s.findAllFn(ctx, sort)
}

func (s *stubUserService) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserService) Update(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	return s.updateFn(ctx, in)
}

func (s *stubUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubReportService struct {
	categoryFn func(ctx context.Context, format domain.ReportFormat) (*ports.ReportFile, error)
	productFn  func(ctx context.Context, filter ports.ProductFilter, format domain.ReportFormat) (*ports.ReportFile, error)
}

func (s *stubReportService) CategoryReport(ctx context.Context, format domain.ReportFormat) (*ports.ReportFile, error) {
	return s.categoryFn(ctx, format)
}

func (s *stubReportService) ProductReport(ctx context.Context, filter ports.ProductFilter, format domain.ReportFormat) (*ports.ReportFile, error) {
	return s.productFn(ctx, filter, format)
}

type stubEmailService struct {
	sendFn func(ctx context.Context, destination string) error
}

func (s *stubEmailService) SendProductList(ctx context.Context, destination string) error {
	return s.sendFn(ctx, destination)
}

func reportFile(format domain.ReportFormat) *ports.ReportFile {
	return &ports.ReportFile{
		ContentType: format.ContentType(),
		Filename:    format.Filename(),
		Data:        []byte("report:" + string(format)),
	}
}
