package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/weather"
	"golf-api/pkg/util/numberutils"
)

const headerConditionsSource = "X-Conditions-Source"

type WeatherController struct {
	api         *echo.Group
	useCase     weather.UseCase
	requireAuth echo.MiddlewareFunc
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, requireAuth echo.MiddlewareFunc) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, requireAuth: requireAuth}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/conditions", controller.GetConditions, controller.requireAuth)
}

// GetConditions godoc
// @Summary Current conditions at a location
// @Description Temperature, wind and humidity from the National Weather Service, cached per location.
// @Description The X-Conditions-Source header tells whether the cache or the service answered.
// @Tags weather
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Latitude" example(40.7128)
// @Param longitude query number true "Longitude" example(-74.006)
// @Success 200 {object} entity.WeatherConditions
// @Failure 400 {object} model.ErrorResponse "Missing or invalid coordinates"
// @Failure 500 {object} model.ErrorResponse "Weather service unavailable"
// @Router /weather/conditions [get]
func (controller *WeatherController) GetConditions(c echo.Context) error {
	latitude, err := numberutils.ToFloat64WithError(c.QueryParam("latitude"))
	if err != nil {
		return badRequest(c, "latitude must be a number")
	}
	longitude, err := numberutils.ToFloat64WithError(c.QueryParam("longitude"))
	if err != nil {
		return badRequest(c, "longitude must be a number")
	}

	location := model.Location{Latitude: latitude, Longitude: longitude}
	conditions, source, err := controller.useCase.GetConditions(c.Request().Context(), location)
	if err != nil {
		return errorJSON(c, err)
	}

	c.Response().Header().Set(headerConditionsSource, string(source))
	return c.JSON(http.StatusOK, conditions)
}
