package cache

import (
	"context"

	"climate-api/internal/domain/model"
	"climate-api/pkg/redis"
)

// RedisHealthGateway reports the redis instance backing the rate limiter.
// A nil checker means redis is not configured.
type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(checker *redis.HealthChecker) *RedisHealthGateway {
	return &RedisHealthGateway{checker: checker}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.checker == nil {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message": "Redis not configured",
			},
		}
	}

	check := gateway.checker.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}
