package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"climate-api/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB     *sql.DB
	Driver string
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB, driver string) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db, Driver: driver}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return downStatus(gateway.Driver, err)
	}

	stats := gateway.DB.Stats()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":           gateway.Driver,
			"client":           "sql",
			"open_connections": strconv.Itoa(stats.OpenConnections),
			"in_use":           strconv.Itoa(stats.InUse),
			"message":          string(model.StatusUp),
		},
	}
}
