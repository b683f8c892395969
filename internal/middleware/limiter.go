package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

func (l *rateLimiter) get(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

// AuthRateLimit throttles credential submissions per client IP.
func AuthRateLimit(rps float64, burst int) gin.HandlerFunc {
	if burst <= 0 {
		burst = 5
	}
	l := &rateLimiter{rps: rate.Limit(rps), burst: burst}

	return func(c *gin.Context) {
		if !l.get(c.ClientIP()).Allow() {
			c.String(http.StatusTooManyRequests, "Too many attempts. Please try again shortly.")
			c.Abort()
			return
		}
		c.Next()
	}
}
