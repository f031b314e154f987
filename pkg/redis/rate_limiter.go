package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxRequestsPerSecond is the maximum number of requests per subject per second (0 disables)
	MaxRequestsPerSecond int
	// MaxRequestsPerMinute is the maximum number of requests per subject per minute (0 disables)
	MaxRequestsPerMinute int
	// Namespace prefixes every key written by the limiter
	Namespace string
}

// NewRateLimiterOptions creates rate limiter options with every limit disabled
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{Namespace: "rate-limit"}
}

// WithMaxRequestsPerSecond sets the per second limit
func (o *RateLimiterOptions) WithMaxRequestsPerSecond(max int) *RateLimiterOptions {
	o.MaxRequestsPerSecond = max
	return o
}

// WithMaxRequestsPerMinute sets the per minute limit
func (o *RateLimiterOptions) WithMaxRequestsPerMinute(max int) *RateLimiterOptions {
	o.MaxRequestsPerMinute = max
	return o
}

// WithNamespace sets the key namespace
func (o *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	o.Namespace = namespace
	return o
}

// Validate validates the rate limiter options
func (o *RateLimiterOptions) Validate() error {
	if o.MaxRequestsPerSecond < 0 || o.MaxRequestsPerMinute < 0 {
		return fmt.Errorf("limits must be non-negative")
	}
	if o.MaxRequestsPerSecond == 0 && o.MaxRequestsPerMinute == 0 {
		return fmt.Errorf("at least one limit must be configured (MaxRequestsPerSecond or MaxRequestsPerMinute)")
	}
	return nil
}

// Decision codes returned by the acquire script
const (
	allowed           = 1
	perSecondExceeded = -1
	perMinuteExceeded = -2
)

// acquireScript checks and records a request in two sliding windows atomically
const acquireScript = `
local tps_key = KEYS[1]
local tpm_key = KEYS[2]

local max_tps = tonumber(ARGV[1])
local max_tpm = tonumber(ARGV[2])
local member = ARGV[3]
local now_nanos = tonumber(ARGV[4])

if max_tps > 0 then
	local cutoff = now_nanos - 1000000000
	redis.call("ZREMRANGEBYSCORE", tps_key, "-inf", cutoff)
	if redis.call("ZCARD", tps_key) >= max_tps then
		return -1
	end
end

if max_tpm > 0 then
	local cutoff = now_nanos - 60000000000
	redis.call("ZREMRANGEBYSCORE", tpm_key, "-inf", cutoff)
	if redis.call("ZCARD", tpm_key) >= max_tpm then
		return -2
	end
end

if max_tps > 0 then
	redis.call("ZADD", tps_key, now_nanos, member)
	redis.call("EXPIRE", tps_key, 2)
end

if max_tpm > 0 then
	redis.call("ZADD", tpm_key, now_nanos, member)
	redis.call("EXPIRE", tpm_key, 61)
end

return 1
`

// RateLimiter is a distributed sliding window limiter keyed by subject (e.g. client IP)
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
	now    func() time.Time
}

// NewRateLimiter creates a new distributed rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) (*RateLimiter, error) {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &RateLimiter{client: client, opts: opts, now: time.Now}, nil
}

// buildKey constructs the full key using Namespace::subject::suffix format
func (rl *RateLimiter) buildKey(subject string, suffix string) string {
	if rl.opts.Namespace != "" {
		return rl.opts.Namespace + "::" + subject + "::" + suffix
	}
	return subject + "::" + suffix
}

// Allow records a request for subject and reports whether it is within limits.
// A non-nil error means Redis could not be consulted.
func (rl *RateLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	now := rl.now()

	result, err := rl.client.GetClient().Eval(ctx, acquireScript, []string{
		rl.buildKey(subject, "tps"),
		rl.buildKey(subject, "tpm"),
	},
		rl.opts.MaxRequestsPerSecond,
		rl.opts.MaxRequestsPerMinute,
		fmt.Sprintf("%d", now.UnixNano()),
		now.UnixNano(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limiter: %w", err)
	}

	switch result {
	case allowed:
		return true, nil
	case perSecondExceeded, perMinuteExceeded:
		return false, nil
	default:
		return false, fmt.Errorf("unknown rate limiter result: %d", result)
	}
}
