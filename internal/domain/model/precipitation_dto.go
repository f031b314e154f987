package model

// PrecipitationDTO is one row of the precipitation listing. Prcp stays null when not recorded.
type PrecipitationDTO struct {
	Station string   `json:"station"`
	Date    string   `json:"date"`
	Prcp    *float64 `json:"prcp"`
}
