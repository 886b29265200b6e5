package middleware

import (
	"calendar-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
