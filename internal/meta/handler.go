package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/boracay-silvertown/go-api-server/internal/config"
	"github.com/boracay-silvertown/go-api-server/internal/shared/database"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// Handler serves meta endpoints that sit outside the API surface.
type Handler struct {
	cfg *config.Config
	db  *database.DB
}

func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health reports service liveness and database connectivity. Load balancers
// treat any non-200 as out of rotation.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"error":  err.Error(),
				},
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"database": gin.H{
				"status":     "up",
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}
