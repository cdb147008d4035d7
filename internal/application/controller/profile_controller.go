package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golf-api/internal/application/middleware"
	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/club"
)

type ProfileController struct {
	api         *echo.Group
	useCase     club.UseCase
	requireAuth echo.MiddlewareFunc
}

func NewProfileController(api *echo.Group, useCase club.UseCase, requireAuth echo.MiddlewareFunc) *ProfileController {
	return &ProfileController{api: api, useCase: useCase, requireAuth: requireAuth}
}

// InitProfileRoutes initializes the bag management routes of the authenticated user
func (controller *ProfileController) InitProfileRoutes() {
	profile := controller.api.Group("/profile", controller.requireAuth)
	profile.GET("", controller.GetProfile)
	profile.POST("", controller.AddClub)
	profile.PUT("/:id", controller.UpdateClub)
	profile.DELETE("/:id", controller.RemoveClub)
}

// GetProfile godoc
// @Summary Get profile
// @Description The authenticated user with the clubs of the bag
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileDTO
// @Failure 401 {object} model.ErrorResponse
// @Router /profile [get]
func (controller *ProfileController) GetProfile(c echo.Context) error {
	principal, _ := middleware.PrincipalFrom(c)

	profile, err := controller.useCase.GetProfile(c.Request().Context(), principal.UserID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// AddClub godoc
// @Summary Add a club
// @Description Add a club with its base carry distance in yards to the bag
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param club body model.ClubRequestDTO true "Club"
// @Success 201 {object} entity.Club
// @Failure 400 {object} model.ErrorResponse "Unknown club name or non positive distance"
// @Router /profile [post]
func (controller *ProfileController) AddClub(c echo.Context) error {
	principal, _ := middleware.PrincipalFrom(c)

	var dto model.ClubRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := controller.useCase.AddClub(c.Request().Context(), principal.UserID, dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club id"
// @Param club body model.ClubRequestDTO true "Club"
// @Success 200 {object} entity.Club
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse "Club not found in the user's bag"
// @Router /profile/{id} [put]
func (controller *ProfileController) UpdateClub(c echo.Context) error {
	principal, _ := middleware.PrincipalFrom(c)

	var dto model.ClubRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := controller.useCase.UpdateClub(c.Request().Context(), principal.UserID, c.Param("id"), dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// RemoveClub godoc
// @Summary Remove a club
// @Tags profile
// @Security BearerAuth
// @Param id path string true "Club id"
// @Success 204 "Club removed"
// @Failure 404 {object} model.ErrorResponse "Club not found in the user's bag"
// @Router /profile/{id} [delete]
func (controller *ProfileController) RemoveClub(c echo.Context) error {
	principal, _ := middleware.PrincipalFrom(c)

	if err := controller.useCase.RemoveClub(c.Request().Context(), principal.UserID, c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
