package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/auth"
	"golf-api/pkg/util/numberutils"
)

type AuthController struct {
	api          *echo.Group
	useCase      auth.UseCase
	requireAuth  echo.MiddlewareFunc
	requireAdmin echo.MiddlewareFunc
}

func NewAuthController(api *echo.Group, useCase auth.UseCase, requireAuth, requireAdmin echo.MiddlewareFunc) *AuthController {
	return &AuthController{api: api, useCase: useCase, requireAuth: requireAuth, requireAdmin: requireAdmin}
}

// InitAuthRoutes initializes registration, login and user administration routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/users", controller.Register)
	controller.api.POST("/login", controller.Login)
	controller.api.POST("/token/refresh", controller.Refresh)
	controller.api.GET("/admin/users", controller.ListUsers, controller.requireAuth, controller.requireAdmin)
}

// Register godoc
// @Summary Register a user
// @Description Create an account. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body model.RegisterRequestDTO true "Account data"
// @Success 201 {object} entity.User
// @Failure 400 {object} model.ErrorResponse "Missing username or password"
// @Failure 409 {object} model.ErrorResponse "Username already taken"
// @Router /users [post]
func (controller *AuthController) Register(c echo.Context) error {
	var dto model.RegisterRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := controller.useCase.Register(c.Request().Context(), dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequestDTO true "Credentials"
// @Success 200 {object} model.TokenDTO
// @Failure 401 {object} model.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var dto model.LoginRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	token, err := controller.useCase.Login(c.Request().Context(), dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, token)
}

// Refresh godoc
// @Summary Refresh the access token
// @Description Exchange the refresh token issued at login for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body model.RefreshRequestDTO true "Refresh token"
// @Success 200 {object} model.TokenDTO
// @Failure 400 {object} model.ErrorResponse "Missing refresh token"
// @Failure 401 {object} model.ErrorResponse "Invalid or expired refresh token"
// @Router /token/refresh [post]
func (controller *AuthController) Refresh(c echo.Context) error {
	var dto model.RefreshRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	token, err := controller.useCase.Refresh(c.Request().Context(), dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, token)
}

// ListUsers godoc
// @Summary List users
// @Description Paginated list of accounts, admin only
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.User]
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /admin/users [get]
func (controller *AuthController) ListUsers(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	users, err := controller.useCase.ListUsers(c.Request().Context(), page, size)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}
