package controller

import (
	"context"
	"net/http"
	"testing"

	"climate-api/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubHealthUseCase struct {
	response model.HealthResponse
}

func (s stubHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	return s.response
}

func TestCheckHealth_Up(t *testing.T) {
	e := echo.New()
	NewHealthController(e.Group(""), stubHealthUseCase{model.HealthResponse{
		Status:   model.StatusUp,
		Database: model.ComponentHealthStatus{Status: model.StatusUp},
		Cache:    model.ComponentHealthStatus{Status: model.StatusUnknown},
	}}).InitHealthRoutes()

	rec := serve(e, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"UP"`)
}

func TestCheckHealth_Down(t *testing.T) {
	e := echo.New()
	NewHealthController(e.Group(""), stubHealthUseCase{model.HealthResponse{
		Status:   model.StatusDown,
		Database: model.ComponentHealthStatus{Status: model.StatusDown},
		Cache:    model.ComponentHealthStatus{Status: model.StatusUnknown},
	}}).InitHealthRoutes()

	rec := serve(e, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
