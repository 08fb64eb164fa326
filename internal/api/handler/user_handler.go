package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/api/metrics"
	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

const tokenType = "Bearer"

var userSortFields = []string{"id", "firstName", "lastName", "email"}

// UserHandler handles user management and login.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /user.
//
// @Summary      List users
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number, zero based"
// @Param        size  query     int     false  "Page size (max 100)"
// @Param        sort  query     string  false  "Sort, e.g. email,asc"
// @Success      200   {object}  Page[userResponse]
// @Failure      400   {object}  errorResponse
// @Router       /user [get]
func (h *UserHandler) List(c echo.Context) error {
	req, err := parsePageRequest(c, userSortFields...)
	if err != nil {
		return err
	}

	users, err := h.service.FindAll(c.Request().Context(), req.Sort)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Paginate(mapAll(users, toUserResponse), req.Page, req.Size))
}

// Get handles GET /user/:id.
//
// @Summary      Get a user by id
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /user.
//
// @Summary      Create a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  userResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	user, err := h.service.Insert(c.Request().Context(), toUserInput(req))
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()

	c.Response().Header().Set(echo.HeaderLocation, "/user/"+user.ID.String())
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /user. An empty password keeps the current one.
//
// @Summary      Update a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "User"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /user [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	user, err := h.service.Update(c.Request().Context(), toUserUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /user/:id.
//
// @Summary      Delete a user
// @Tags         user
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Login handles POST /user/login.
//
// @Summary      Authenticate and obtain a JWT
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(err)
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Name:      result.User.FirstName,
		Token:     result.Token,
		TokenType: tokenType,
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "blocked"
	default:
		return "error"
	}
}
