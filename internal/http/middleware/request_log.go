package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/sns-consult-backend/internal/platform/ctxutil"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

// quietRoutes are polled by infrastructure and only logged at debug level.
var quietRoutes = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
}

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes_in", c.Request.ContentLength,
			"bytes_out", c.Writer.Size(),
			"client_ip", c.ClientIP(),
		}
		route := c.Request.URL.Path
		if rq, ok := ctxutil.RequestFrom(c.Request.Context()); ok {
			if rq.Route != "unmatched" {
				route = rq.Route
			}
			fields = append(fields, "request_id", rq.ID, "trace_id", rq.TraceID)
		}
		fields = append(fields, "route", route)
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		case quietRoutes[route]:
			log.Debug("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
