package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/climate"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockClimateUseCase struct {
	mock.Mock
}

func (m *mockClimateUseCase) Precipitation(ctx context.Context) ([]model.PrecipitationDTO, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.PrecipitationDTO)
	return rows, args.Error(1)
}

func (m *mockClimateUseCase) StationNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *mockClimateUseCase) TrailingYearTemperatures(ctx context.Context) ([]model.TemperatureObservationDTO, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.TemperatureObservationDTO)
	return rows, args.Error(1)
}

func (m *mockClimateUseCase) TemperatureStats(ctx context.Context, start string, end string) (model.TemperatureStats, error) {
	args := m.Called(ctx, start, end)
	stats, _ := args.Get(0).(model.TemperatureStats)
	return stats, args.Error(1)
}

func (m *mockClimateUseCase) TemperatureStatsFrom(ctx context.Context, start string) (model.TemperatureStats, error) {
	args := m.Called(ctx, start)
	stats, _ := args.Get(0).(model.TemperatureStats)
	return stats, args.Error(1)
}

func newClimateServer(t *testing.T, contextPath string) (*echo.Echo, *mockClimateUseCase) {
	m := &mockClimateUseCase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	e := echo.New()
	NewClimateController(e.Group(contextPath), contextPath, m).InitClimateRoutes()
	return e, m
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func float(v float64) *float64 {
	return &v
}

func TestWelcome_ListsRoutes(t *testing.T) {
	e, _ := newClimateServer(t, "")

	rec := serve(e, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	body := rec.Body.String()
	assert.Contains(t, body, "Available Routes:")
	for _, route := range []string{
		"/api/v1.0/precipitation",
		"/api/v1.0/stations",
		"/api/v1.0/tobs",
		"/api/v1.0/&lt;start&gt;<br/>",
		"/api/v1.0/&lt;start&gt;/&lt;end&gt;",
	} {
		assert.Contains(t, body, route)
	}
}

func TestWelcome_UsesContextPath(t *testing.T) {
	e, _ := newClimateServer(t, "/climate")

	rec := serve(e, "/climate/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/climate/api/v1.0/tobs")
}

func TestPrecipitation(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("Precipitation", mock.Anything).Return([]model.PrecipitationDTO{
		{Station: "USC00519397", Date: "2010-01-01", Prcp: float(0.08)},
		{Station: "USC00519397", Date: "2010-01-02"},
	}, nil).Once()

	rec := serve(e, "/api/v1.0/precipitation")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"station":"USC00519397","date":"2010-01-01","prcp":0.08},
		{"station":"USC00519397","date":"2010-01-02","prcp":null}
	]`, rec.Body.String())
}

func TestPrecipitation_StoreUnavailable(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("Precipitation", mock.Anything).
		Return(nil, fmt.Errorf("%w: precipitation: unable to open database file", climate.ErrStoreUnavailable)).Once()

	rec := serve(e, "/api/v1.0/precipitation")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Data store unavailable"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "database file")
}

func TestStations(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("StationNames", mock.Anything).Return([]string{"WAIKIKI 717.2, HI US", "KANEOHE 838.1, HI US"}, nil).Once()

	rec := serve(e, "/api/v1.0/stations")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["WAIKIKI 717.2, HI US","KANEOHE 838.1, HI US"]`, rec.Body.String())
}

func TestTemperatureObservations(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("TrailingYearTemperatures", mock.Anything).Return([]model.TemperatureObservationDTO{
		{Station: "USC00519281", Date: "2017-08-18", Tobs: float(79)},
	}, nil).Once()

	rec := serve(e, "/api/v1.0/tobs")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"station":"USC00519281","date":"2017-08-18","tobs":79}]`, rec.Body.String())
}

func TestTemperatureObservations_EmptyDataset(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("TrailingYearTemperatures", mock.Anything).Return(nil, climate.ErrEmptyDataset).Once()

	rec := serve(e, "/api/v1.0/tobs")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No measurements available"}`, rec.Body.String())
}

func TestTemperatureStats_Range(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("TemperatureStats", mock.Anything, "2017-01-01", "2017-01-31").
		Return(model.TemperatureStats{Min: float(60), Avg: float(69.5), Max: float(81)}, nil).Once()

	rec := serve(e, "/api/v1.0/2017-01-01/2017-01-31")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[60, 69.5, 81]`, rec.Body.String())
}

func TestTemperatureStats_NoObservations(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("TemperatureStats", mock.Anything, "2030-01-01", "2030-01-31").Return(model.TemperatureStats{}, nil).Once()

	rec := serve(e, "/api/v1.0/2030-01-01/2030-01-31")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[null, null, null]`, rec.Body.String())
}

func TestTemperatureStats_MalformedDate(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("TemperatureStats", mock.Anything, "2017-1-1", "2017-01-31").
		Return(model.TemperatureStats{}, &climate.MalformedDateError{Date: "2017-1-1"}).Once()

	rec := serve(e, "/api/v1.0/2017-1-1/2017-01-31")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Date 2017-1-1 is not in YYYY-MM-DD format"}`, rec.Body.String())
}

func TestTemperatureStatsFrom(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("TemperatureStatsFrom", mock.Anything, "2017-01-01").
		Return(model.TemperatureStats{Min: float(58), Avg: float(74), Max: float(87)}, nil).Once()

	rec := serve(e, "/api/v1.0/2017-01-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[58, 74, 87]`, rec.Body.String())
}

func TestTemperatureStatsFrom_EmptyDataset(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("TemperatureStatsFrom", mock.Anything, "2017-01-01").Return(model.TemperatureStats{}, climate.ErrEmptyDataset).Once()

	rec := serve(e, "/api/v1.0/2017-01-01")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnexpectedError_IsGeneric(t *testing.T) {
	e, m := newClimateServer(t, "")
	m.On("StationNames", mock.Anything).Return(nil, fmt.Errorf("boom")).Once()

	rec := serve(e, "/api/v1.0/stations")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
