package climate

import (
	"context"
	"errors"

	"climate-api/internal/domain/model"
	"climate-api/pkg/msg"
)

var (
	// ErrStoreUnavailable wraps any failure to read from the data store
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrEmptyDataset means there is no measurement to derive the latest date from
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrMalformedDate is only returned when strict date validation is enabled
	ErrMalformedDate = errors.New("malformed date")
)

// MalformedDateError reports the offending input; it matches ErrMalformedDate with errors.Is
type MalformedDateError struct {
	Date string
}

func (e *MalformedDateError) Error() string {
	return msg.GetMessage("climate.error.malformed-date", e.Date)
}

func (e *MalformedDateError) Unwrap() error {
	return ErrMalformedDate
}

// TrailingWindowDays is the exact day count of the temperature observation window.
const TrailingWindowDays = 365

type UseCase interface {
	// Precipitation returns every (station, date, prcp) row, unbounded and unordered
	Precipitation(ctx context.Context) ([]model.PrecipitationDTO, error)

	// StationNames returns every station name in store order
	StationNames(ctx context.Context) ([]string, error)

	// TrailingYearTemperatures returns the observations dated within 365 days of the latest measurement, newest first
	TrailingYearTemperatures(ctx context.Context) ([]model.TemperatureObservationDTO, error)

	// TemperatureStats returns min, avg and max tobs over start <= date <= end
	TemperatureStats(ctx context.Context, start string, end string) (model.TemperatureStats, error)

	// TemperatureStatsFrom returns min, avg and max tobs from start up to the latest measurement
	TemperatureStatsFrom(ctx context.Context, start string) (model.TemperatureStats, error)
}
