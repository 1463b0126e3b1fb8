package middleware

import (
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/config"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.PerMin),
	}
}
