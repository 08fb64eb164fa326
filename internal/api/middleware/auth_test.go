package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

type stubVerifier struct {
	principals map[string]*ports.Principal
}

func (s *stubVerifier) Verify(token string) (*ports.Principal, error) {
	p, ok := s.principals[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return p, nil
}

func newStubVerifier() *stubVerifier {
	return &stubVerifier{principals: map[string]*ports.Principal{
		"good": {Email: "alice@example.com", Roles: []string{"ROLE_ADMIN", "ROLE_USER"}},
	}}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(newStubVerifier())
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(ContextEmail) != "alice@example.com" {
			t.Fatalf("email not set")
		}
		if !slices.Equal(Roles(c), []string{"ROLE_ADMIN", "ROLE_USER"}) {
			t.Fatalf("roles not set: %v", Roles(c))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token good"},
		{"empty token", "Bearer "},
		{"invalid token", "Bearer not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Auth(newStubVerifier())(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(newStubVerifier())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
