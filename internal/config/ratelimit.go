package config

import (
	"time"
)

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func NewRateLimitConfig() *RateLimitConfig {
	limit := intEnv("RATE_LIMIT_REQUESTS", 30)
	windowSec := intEnv("RATE_LIMIT_WINDOW_SEC", 60)
	return &RateLimitConfig{
		Limit:  limit,
		Window: time.Duration(windowSec) * time.Second,
	}
}
