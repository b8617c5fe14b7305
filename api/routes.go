package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apiauth "github.com/voxnote/study-api/api/auth"
	"github.com/voxnote/study-api/api/chat"
	"github.com/voxnote/study-api/api/health"
	"github.com/voxnote/study-api/api/insights"
	"github.com/voxnote/study-api/api/transcribe"
	"github.com/voxnote/study-api/api/transcriptions"
	"github.com/voxnote/study-api/api/types"
	"github.com/voxnote/study-api/api/version"
	_ "github.com/voxnote/study-api/docs/swagger"
	"github.com/voxnote/study-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no auth, no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil || deps.Verifier == nil {
		return fmt.Errorf("identity verifier is not configured")
	}

	authHandler := apiauth.NewHandler(deps.Verifier)

	// Everything under /api/v1 requires a bearer credential
	v1 := engine.Group("/api/v1")
	v1.Use(authHandler.AuthMiddleware())
	if cfg.RateLimiting.Enabled {
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.RPS, cfg.RateLimiting.Burst))
	}

	v1.GET("/me", authHandler.Me)

	transcribe.RegisterRoutes(v1, deps)

	aiGroup := v1.Group("/ai")
	insights.RegisterRoutes(aiGroup, deps)
	chat.RegisterRoutes(aiGroup, deps)

	recordsGroup := v1.Group("/transcriptions")
	transcriptions.RegisterRoutes(recordsGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
