package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger is a gin middleware that logs each request with zerolog and
// feeds the HTTP metrics. Route labels use the matched pattern, not the raw
// path, to keep metric cardinality bounded.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		ObserveHTTP(route, c.Request.Method, status, dur)

		evt := logger.Info()
		if status >= 500 {
			evt = logger.Error()
		}
		evt.
			Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("duration", dur).
			Msg("request")
	}
}
