// package ratelimit implements the fixed-window request counter with Redis.
// The counter lives outside process memory since several instances of this
// service may serve the same caller concurrently.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codequiz-2025.net/internal/config"
	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
)

const counterKeyPrefix = "ratelimit:"

var _ secondary.RateLimiter = (*Counter)(nil)

// Counter implements the RateLimiter port with a per-caller fixed window.
// INCR is atomic, so concurrent callers racing on the same window key are
// counted correctly.
type Counter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
	logger      primary.Logger
}

// NewCounter creates a new Redis-backed rate limit counter
func NewCounter(redisClient *redis.Client, cfg *config.RateLimitConfig, logger primary.Logger) *Counter {
	return &Counter{
		redisClient: redisClient,
		limit:       cfg.Limit,
		window:      cfg.Window,
		logger:      logger,
	}
}

// Allow counts one request for the caller and decides whether it is within
// the window limit.
func (c *Counter) Allow(ctx context.Context, callerID string) (*secondary.RateDecision, error) {
	now := time.Now()
	windowStart := now.Truncate(c.window)
	key := fmt.Sprintf("%s%s:%d", counterKeyPrefix, callerID, windowStart.Unix())

	pipe := c.redisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// Keep the key one extra window so a clock-skewed reader still sees it
	pipe.Expire(ctx, key, c.window*2)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("Failed to update rate limit counter", "caller", callerID, "error", err)
		return nil, fmt.Errorf("failed to update rate limit counter: %w", err)
	}

	count := incr.Val()
	if count > int64(c.limit) {
		return &secondary.RateDecision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: windowStart.Add(c.window).Sub(now),
		}, nil
	}

	return &secondary.RateDecision{
		Allowed:   true,
		Remaining: c.limit - int(count),
	}, nil
}
