package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings Redis and reports pool statistics
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthChecker{client: client, timeout: timeout}
}

// HealthCheck performs a ping with the configured timeout
func (h *HealthChecker) HealthCheck(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	details := map[string]string{
		"address":  h.client.GetConfig().Addr(),
		"database": strconv.Itoa(h.client.GetConfig().Database),
	}

	if err := h.client.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.Stats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["message"] = string(StatusUp)

	return HealthCheck{Status: StatusUp, Details: details}
}
