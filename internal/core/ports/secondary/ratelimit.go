package secondary

import (
	"context"
	"time"
)

// RateDecision is the outcome of one rate-limit check
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter counts requests per caller identity over a fixed window. The
// counter store is external and updated atomically since multiple instances
// of this service may race on it.
type RateLimiter interface {
	Allow(ctx context.Context, callerID string) (*RateDecision, error)
}
