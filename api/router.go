package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/cookly/api/handler"
	"github.com/use-agent/cookly/api/middleware"
	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/extractor"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → RequestID → Logger → CORS
//	API:     Auth (if enabled)
//
// Health endpoints sit outside auth so monitoring probes always work.
func NewRouter(x *extractor.Extractor, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(middleware.CORS(cfg.Server.CORSOrigin))

	health := handler.Health(startTime)
	r.GET("/api/health", health)
	r.GET("/api/v1/health", health)

	protected := r.Group("/api")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}

	extract := handler.Extract(x)
	protected.POST("/extract-recipe", extract)
	protected.POST("/v1/extract", extract)
	protected.POST("/v1/extract/batch", handler.Batch(x, cfg.Batch))
	protected.POST("/v1/share", handler.Share(cfg.Share))

	return r
}
