package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golf-api/internal/application/middleware"
	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/calculation"
)

type CalculationController struct {
	api         *echo.Group
	useCase     calculation.UseCase
	requireAuth echo.MiddlewareFunc
}

func NewCalculationController(api *echo.Group, useCase calculation.UseCase, requireAuth echo.MiddlewareFunc) *CalculationController {
	return &CalculationController{api: api, useCase: useCase, requireAuth: requireAuth}
}

// InitCalculationRoutes initializes calculation routes
func (controller *CalculationController) InitCalculationRoutes() {
	controller.api.POST("/calculations", controller.Calculate, controller.requireAuth)
	controller.api.POST("/calculations/preview", controller.Preview)
}

// Calculate godoc
// @Summary Adjust the bag for the weather
// @Description Adjusts every club of the authenticated user's bag. With facingDirection a single
// @Description adjusted distance is returned per club, without it one per compass point.
// @Description With latitude and longitude, missing weather fields are filled from live conditions.
// @Tags calculations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weather body model.CalculationRequestDTO true "Weather"
// @Success 200 {object} model.CalculationResponseDTO
// @Failure 400 {object} model.ErrorResponse "Missing or invalid weather field"
// @Failure 404 {object} model.ErrorResponse "No golf clubs found for this user"
// @Router /calculations [post]
func (controller *CalculationController) Calculate(c echo.Context) error {
	principal, _ := middleware.PrincipalFrom(c)

	var dto model.CalculationRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	response, err := controller.useCase.Calculate(c.Request().Context(), principal.UserID, dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Preview godoc
// @Summary Adjust a single distance
// @Description Adjusts one ad hoc base distance without reading any bag
// @Tags calculations
// @Accept json
// @Produce json
// @Param weather body model.PreviewRequestDTO true "Weather and base distance"
// @Success 200 {object} distance.ClubResult
// @Failure 400 {object} model.ErrorResponse "Missing or invalid field"
// @Router /calculations/preview [post]
func (controller *CalculationController) Preview(c echo.Context) error {
	var dto model.PreviewRequestDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := controller.useCase.Preview(c.Request().Context(), dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
