package middleware

import (
	"voice-task-tracker/pkg/log"
)

// Config configures the shared HTTP middlewares.
type Config struct {
	RequestsPerMin int
	AllowedOrigins []string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins []string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(cfg.RequestsPerMin),
		allowedOrigins: cfg.AllowedOrigins,
	}
}
