package middleware

import (
	"tablebooker/config"
	"tablebooker/pkg/log"
)

// Middleware bundles the HTTP middlewares shared across domains.
type Middleware struct {
	l       log.Logger
	cfg     config.RateLimitConfig
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
