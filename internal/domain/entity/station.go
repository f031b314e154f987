package entity

// Station is a weather station row of the pre-loaded dataset.
type Station struct {
	ID        int     `json:"id" gorm:"column:id;primaryKey"`
	Station   string  `json:"station" gorm:"column:station"`
	Name      string  `json:"name" gorm:"column:name"`
	Latitude  float64 `json:"latitude" gorm:"column:latitude"`
	Longitude float64 `json:"longitude" gorm:"column:longitude"`
	Elevation float64 `json:"elevation" gorm:"column:elevation"`
}

func (Station) TableName() string {
	return "station"
}
