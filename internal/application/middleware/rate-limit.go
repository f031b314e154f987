package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-api/internal/domain/model"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"
)

// Limiter decides whether a request from subject may proceed
type Limiter interface {
	Allow(ctx context.Context, subject string) (bool, error)
}

// RateLimit rejects requests over the limit with 429, keyed by client IP.
// When the limiter itself fails the request is let through.
func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isProbePath(c) {
				return next(c)
			}

			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn(msg.GetMessage("rate-limit.unavailable", err), zap.Error(err))
				return next(c)
			}
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{Error: msg.GetMessage("rate-limit.exceeded")})
			}
			return next(c)
		}
	}
}
