package climate

import (
	"context"
	"fmt"

	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/model"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"
	"climate-api/pkg/util/dateutils"

	"go.uber.org/zap"
)

type climateUseCase struct {
	gateway     db.ClimateGateway
	strictDates bool
}

// NewClimateUseCase builds the use case. With strictDates the statistics
// operations reject input that is not YYYY-MM-DD instead of querying with it.
func NewClimateUseCase(gateway db.ClimateGateway, strictDates bool) UseCase {
	return &climateUseCase{
		gateway:     gateway,
		strictDates: strictDates,
	}
}

func (uc *climateUseCase) Precipitation(ctx context.Context) ([]model.PrecipitationDTO, error) {
	rows, err := uc.gateway.FindPrecipitation(ctx)
	if err != nil {
		return nil, storeError("precipitation", err)
	}
	if rows == nil {
		rows = []model.PrecipitationDTO{}
	}
	return rows, nil
}

func (uc *climateUseCase) StationNames(ctx context.Context) ([]string, error) {
	names, err := uc.gateway.FindStationNames(ctx)
	if err != nil {
		return nil, storeError("stations", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (uc *climateUseCase) TrailingYearTemperatures(ctx context.Context) ([]model.TemperatureObservationDTO, error) {
	rows, err := uc.gateway.FindTemperatureObservationsDesc(ctx)
	if err != nil {
		return nil, storeError("tobs", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	latest := rows[0].Date
	cutoff, err := dateutils.MinusDays(latest, TrailingWindowDays)
	if err != nil {
		return nil, fmt.Errorf("latest measurement date: %w", err)
	}
	log.Debug(msg.GetMessage("climate.trailing-year", cutoff, latest))

	window := make([]model.TemperatureObservationDTO, 0, len(rows))
	for _, row := range rows {
		if row.Date >= cutoff {
			window = append(window, row)
		}
	}
	return window, nil
}

func (uc *climateUseCase) TemperatureStats(ctx context.Context, start string, end string) (model.TemperatureStats, error) {
	if err := uc.validateDates(start, end); err != nil {
		return model.TemperatureStats{}, err
	}

	stats, err := uc.gateway.CalcTemperatureStats(ctx, start, end)
	if err != nil {
		return model.TemperatureStats{}, storeError("temperature-stats", err)
	}
	return stats, nil
}

func (uc *climateUseCase) TemperatureStatsFrom(ctx context.Context, start string) (model.TemperatureStats, error) {
	if err := uc.validateDates(start); err != nil {
		return model.TemperatureStats{}, err
	}

	latest, found, err := uc.gateway.FindLatestDate(ctx)
	if err != nil {
		return model.TemperatureStats{}, storeError("latest-date", err)
	}
	if !found {
		return model.TemperatureStats{}, ErrEmptyDataset
	}

	return uc.TemperatureStats(ctx, start, latest)
}

func (uc *climateUseCase) validateDates(dates ...string) error {
	if !uc.strictDates {
		return nil
	}
	for _, date := range dates {
		if !dateutils.IsISODate(date) {
			return &MalformedDateError{Date: date}
		}
	}
	return nil
}

func storeError(query string, err error) error {
	log.Error(msg.GetMessage("climate.query-failed", query, err), zap.String("query", query), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, query, err)
}
