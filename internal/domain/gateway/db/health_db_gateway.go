package db

import (
	"context"

	"climate-api/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func downStatus(driver string, err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"driver":  driver,
			"message": err.Error(),
		},
	}
}
