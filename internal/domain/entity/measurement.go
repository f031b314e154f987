package entity

// Measurement is one daily observation of a station. Date is a zero-padded
// YYYY-MM-DD string, so lexical order is chronological order.
type Measurement struct {
	ID      int      `json:"id" gorm:"column:id;primaryKey"`
	Station string   `json:"station" gorm:"column:station"`
	Date    string   `json:"date" gorm:"column:date"`
	Prcp    *float64 `json:"prcp" gorm:"column:prcp"`
	Tobs    *float64 `json:"tobs" gorm:"column:tobs"`
}

func (Measurement) TableName() string {
	return "measurement"
}
