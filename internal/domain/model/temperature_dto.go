package model

import "encoding/json"

// TemperatureObservationDTO is one row of the trailing year temperature listing
type TemperatureObservationDTO struct {
	Station string   `json:"station"`
	Date    string   `json:"date"`
	Tobs    *float64 `json:"tobs"`
}

// TemperatureStats holds min, average and max temperature over a date range.
// Each value is nil when no non-null observation matched.
type TemperatureStats struct {
	Min *float64
	Avg *float64
	Max *float64
}

// MarshalJSON renders the stats as a [min, avg, max] array
func (s TemperatureStats) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]*float64{s.Min, s.Avg, s.Max})
}

// UnmarshalJSON reads a [min, avg, max] array
func (s *TemperatureStats) UnmarshalJSON(data []byte) error {
	var values [3]*float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.Min, s.Avg, s.Max = values[0], values[1], values[2]
	return nil
}

// Empty reports whether no observation contributed to the stats
func (s TemperatureStats) Empty() bool {
	return s.Min == nil && s.Avg == nil && s.Max == nil
}
