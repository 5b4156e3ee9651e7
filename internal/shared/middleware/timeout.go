package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout bounds request processing with a deadline on the request context.
// Handlers and repositories see the deadline through ctx; no goroutine is
// spawned and no response is written here, since the handler may already
// have replied by the time the deadline fires.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			slog.Warn("요청 처리 시간 초과",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}

// IsTimeout reports whether the request deadline has already passed.
func IsTimeout(c *gin.Context) bool {
	return c.Request.Context().Err() == context.DeadlineExceeded
}
