package db

import (
	"context"
	"strconv"
	"time"

	"climate-api/internal/domain/model"

	"gorm.io/gorm"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	driver := gateway.DB.Dialector.Name()

	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(driver, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err = sqlDB.PingContext(ctx); err != nil {
		return downStatus(driver, err)
	}

	stats := sqlDB.Stats()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":           driver,
			"client":           "gorm",
			"open_connections": strconv.Itoa(stats.OpenConnections),
			"in_use":           strconv.Itoa(stats.InUse),
			"message":          string(model.StatusUp),
		},
	}
}
