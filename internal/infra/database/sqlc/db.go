package sqlc

import (
	"context"
	"database/sql"
	"fmt"

	"climate-api/internal/infra/database"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DriverName maps a configured driver to the database/sql driver it registers.
func DriverName(driver string) (string, error) {
	switch driver {
	case database.DriverSQLite:
		return "sqlite3", nil
	case database.DriverPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", driver)
	}
}

// Open builds the connection pool and pings the store once.
func Open(ctx context.Context, config database.Config) (*sql.DB, error) {
	driverName, err := DriverName(config.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, config.DSN)
	if err != nil {
		return nil, err
	}
	config.ApplyPool(db)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
