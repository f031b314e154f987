package gorm

import (
	"context"
	"fmt"
	"time"

	"climate-api/internal/infra/database"
	"climate-api/pkg/log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// zapWriter sends gorm's slow query and error lines to the application log
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	log.Logger.Warnf(format, args...)
}

// Open builds the connection pool and pings the store once.
func Open(ctx context.Context, config database.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case database.DriverSQLite:
		dialector = sqlite.Open(config.DSN)
	case database.DriverPostgres:
		dialector = postgres.Open(config.DSN)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(zapWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	config.ApplyPool(sqlDB)

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}
