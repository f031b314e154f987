package controller

import (
	"errors"
	"net/http"
	"strings"

	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/pkg/msg"

	"github.com/labstack/echo/v4"
)

const apiVersionPath = "/api/v1.0"

type ClimateController struct {
	api         *echo.Group
	contextPath string
	useCase     climate.UseCase
}

func NewClimateController(api *echo.Group, contextPath string, useCase climate.UseCase) *ClimateController {
	return &ClimateController{api: api, contextPath: strings.TrimSuffix(contextPath, "/"), useCase: useCase}
}

// InitClimateRoutes initializes the welcome page and the climate routes
func (controller *ClimateController) InitClimateRoutes() {
	controller.api.GET("/", controller.Welcome)
	controller.api.GET(apiVersionPath+"/precipitation", controller.Precipitation)
	controller.api.GET(apiVersionPath+"/stations", controller.Stations)
	controller.api.GET(apiVersionPath+"/tobs", controller.TemperatureObservations)
	controller.api.GET(apiVersionPath+"/:start", controller.TemperatureStatsFrom)
	controller.api.GET(apiVersionPath+"/:start/:end", controller.TemperatureStats)
}

// Welcome godoc
// @Summary List available routes
// @Tags climate
// @Produce html
// @Success 200 {string} string "Route listing"
// @Router / [get]
func (controller *ClimateController) Welcome(c echo.Context) error {
	prefix := controller.contextPath + apiVersionPath
	routes := []string{
		prefix + "/precipitation",
		prefix + "/stations",
		prefix + "/tobs",
		prefix + "/&lt;start&gt;",
		prefix + "/&lt;start&gt;/&lt;end&gt;",
	}
	return c.HTML(http.StatusOK, "Available Routes:<br/>"+strings.Join(routes, "<br/>"))
}

// Precipitation godoc
// @Summary List every precipitation reading
// @Description Unbounded and unordered: the response holds one entry per measurement row. prcp is null when not recorded.
// @Tags climate
// @Produce json
// @Success 200 {array} model.PrecipitationDTO
// @Failure 500 {object} model.ErrorResponse "Data store unavailable"
// @Router /api/v1.0/precipitation [get]
func (controller *ClimateController) Precipitation(c echo.Context) error {
	rows, err := controller.useCase.Precipitation(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Stations godoc
// @Summary List station names
// @Description Names in store order; no ordering is guaranteed.
// @Tags climate
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} model.ErrorResponse "Data store unavailable"
// @Router /api/v1.0/stations [get]
func (controller *ClimateController) Stations(c echo.Context) error {
	names, err := controller.useCase.StationNames(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, names)
}

// TemperatureObservations godoc
// @Summary List temperature observations of the trailing year
// @Description Observations dated within 365 days of the latest measurement, newest first.
// @Tags climate
// @Produce json
// @Success 200 {array} model.TemperatureObservationDTO
// @Failure 404 {object} model.ErrorResponse "No measurements available"
// @Failure 500 {object} model.ErrorResponse "Data store unavailable"
// @Router /api/v1.0/tobs [get]
func (controller *ClimateController) TemperatureObservations(c echo.Context) error {
	rows, err := controller.useCase.TrailingYearTemperatures(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// TemperatureStats godoc
// @Summary Temperature min, avg and max over a date range
// @Description Inclusive on both ends. Returns [min, avg, max]; each is null when no observation matched.
// @Tags climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)"
// @Param end path string true "End date (YYYY-MM-DD)"
// @Success 200 {array} number "[min, avg, max]"
// @Failure 400 {object} model.ErrorResponse "Malformed date (strict mode only)"
// @Failure 500 {object} model.ErrorResponse "Data store unavailable"
// @Router /api/v1.0/{start}/{end} [get]
func (controller *ClimateController) TemperatureStats(c echo.Context) error {
	stats, err := controller.useCase.TemperatureStats(c.Request().Context(), c.Param("start"), c.Param("end"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// TemperatureStatsFrom godoc
// @Summary Temperature min, avg and max from a start date
// @Description The range ends at the latest measurement date. Returns [min, avg, max].
// @Tags climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)"
// @Success 200 {array} number "[min, avg, max]"
// @Failure 400 {object} model.ErrorResponse "Malformed date (strict mode only)"
// @Failure 404 {object} model.ErrorResponse "No measurements available"
// @Failure 500 {object} model.ErrorResponse "Data store unavailable"
// @Router /api/v1.0/{start} [get]
func (controller *ClimateController) TemperatureStatsFrom(c echo.Context) error {
	stats, err := controller.useCase.TemperatureStatsFrom(c.Request().Context(), c.Param("start"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// errorResponse maps use case errors to a status; store details never reach the client
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, climate.ErrEmptyDataset):
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: msg.GetMessage("climate.error.empty-dataset")})
	case errors.Is(err, climate.ErrMalformedDate):
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, climate.ErrStoreUnavailable):
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("climate.error.store-unavailable")})
	default:
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("climate.error.internal")})
	}
}
