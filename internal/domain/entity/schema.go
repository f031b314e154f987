package entity

// Table pairs a declared table name with the columns the service reads.
type Table struct {
	Name    string
	Columns []string
}

// Schema lists every table and column the service depends on.
var Schema = []Table{
	{Name: Station{}.TableName(), Columns: []string{"id", "station", "name", "latitude", "longitude", "elevation"}},
	{Name: Measurement{}.TableName(), Columns: []string{"id", "station", "date", "prcp", "tobs"}},
}
