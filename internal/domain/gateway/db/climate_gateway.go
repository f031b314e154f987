package db

import (
	"context"

	"climate-api/internal/domain/model"
)

// ClimateGateway is the read-only port over the station and measurement tables.
// Row order of the listing methods is whatever the store yields unless stated.
type ClimateGateway interface {
	FindPrecipitation(ctx context.Context) ([]model.PrecipitationDTO, error)
	FindStationNames(ctx context.Context) ([]string, error)

	// FindTemperatureObservationsDesc returns every observation ordered by date descending
	FindTemperatureObservationsDesc(ctx context.Context) ([]model.TemperatureObservationDTO, error)

	// FindLatestDate returns the maximum measurement date; found is false on an empty table
	FindLatestDate(ctx context.Context) (latest string, found bool, err error)

	// CalcTemperatureStats aggregates tobs over start <= date <= end, ignoring nulls
	CalcTemperatureStats(ctx context.Context, start string, end string) (model.TemperatureStats, error)

	// ValidateSchema checks the declared tables and columns exist in the store
	ValidateSchema(ctx context.Context) error
}

func nullableFloat(valid bool, value float64) *float64 {
	if !valid {
		return nil
	}
	return &value
}
