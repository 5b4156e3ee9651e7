package middleware

import (
	"log/slog"
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// healthPath is excluded from access logging; load balancer probes hit it
// every few seconds and drown out real traffic.
const healthPath = "/health"

// LoggerMiddleware binds a request-scoped slog logger into the context and
// writes one access log line per request, leveled by status code.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))

		// Services and repositories pick this logger up via logger.FromContext
		ctx := logger.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if path == healthPath {
			return
		}

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}

		if raw != "" {
			fields = append(fields, "query", raw)
		}

		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		msg := "Request processed"
		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}
