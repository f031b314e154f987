package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSchema = `
CREATE TABLE station (
  id INTEGER PRIMARY KEY,
  station TEXT NOT NULL,
  name TEXT NOT NULL,
  latitude FLOAT,
  longitude FLOAT,
  elevation FLOAT
);
CREATE TABLE measurement (
  id INTEGER PRIMARY KEY,
  station TEXT NOT NULL,
  date TEXT NOT NULL,
  prcp FLOAT,
  tobs FLOAT
);
`

const testData = `
INSERT INTO station (id, station, name, latitude, longitude, elevation) VALUES
  (1, 'USC00519397', 'WAIKIKI 717.2, HI US', 21.2716, -157.8168, 3.0),
  (2, 'USC00513117', 'KANEOHE 838.1, HI US', 21.4234, -157.8015, 14.6),
  (3, 'USC00519281', 'WAIHEE 837.5, HI US', 21.45167, -157.84889, 32.9);
INSERT INTO measurement (id, station, date, prcp, tobs) VALUES
  (1, 'USC00519397', '2016-08-22', 0.0, 70),
  (2, 'USC00519397', '2016-08-23', 0.15, 81),
  (3, 'USC00513117', '2016-08-23', NULL, 76),
  (4, 'USC00519281', '2017-01-05', 0.02, NULL),
  (5, 'USC00519281', '2017-01-10', NULL, 62),
  (6, 'USC00519397', '2017-01-20', 0.0, 72),
  (7, 'USC00513117', '2017-08-23', 0.45, 82),
  (8, 'USC00519397', '2015-03-01', 0.1, 65);
`

// openTestDB opens a single-connection in-memory store so every query sees the same database
func openTestDB(t *testing.T, statements ...string) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { require.NoError(t, sqlDB.Close()) })

	for _, statement := range statements {
		_, err := sqlDB.Exec(statement)
		require.NoError(t, err)
	}
	return gdb
}

func rawDB(t *testing.T, gdb *gorm.DB) *sql.DB {
	t.Helper()
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	return sqlDB
}

// climateGateways returns both gateway implementations over fresh stores built from statements
func climateGateways(t *testing.T, statements ...string) map[string]ClimateGateway {
	t.Helper()
	return map[string]ClimateGateway{
		"gorm": NewGormClimateGateway(openTestDB(t, statements...)),
		"sql":  NewSQLCClimateGateway(rawDB(t, openTestDB(t, statements...))),
	}
}
