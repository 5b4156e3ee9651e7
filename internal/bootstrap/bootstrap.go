package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/boracay-silvertown/go-api-server/internal/config"
	"github.com/boracay-silvertown/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap assembles the gin engine with the common middleware chain.
type Bootstrap struct {
	cfg *config.Config
}

func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with recovery, request id, CORS, timeout
// and access logging wired in. Routes are registered separately in the router
// package.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Gin's own logger is replaced by slog
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	slog.Error("Panic Recovered",
		"error", fmt.Sprintf("%v", recovered),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error", "request_id": middleware.GetRequestID(c),
	})
}
