package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PageObserver is satisfied by the metrics package.
type PageObserver interface {
	ObservePage(route string, status int, elapsed time.Duration)
}

// RequestLogger tags each request with an id and writes one line per page
// view, feeding the same measurements to Prometheus.
func RequestLogger(log zerolog.Logger, obs PageObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("requestID", requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()

		if obs != nil {
			obs.ObservePage(route, status, elapsed)
		}

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
