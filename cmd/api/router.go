package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spotify-etl/internal/shared/middleware"
	"spotify-etl/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupSpotifyRoutes(v1, c)
	}

	return router
}

// ========================================
// SPOTIFY ROUTES
// ========================================
func setupSpotifyRoutes(v1 *gin.RouterGroup, c *container.Container) {
	spotify := v1.Group("/spotify")
	{
		spotify.POST("/extract", c.ExtractHandler.Extract)
		spotify.GET("/extract", c.ExtractHandler.Extract)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check the object store; the intake listing doubles as the
		// pipeline backlog, which is worth surfacing.
		storeStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		keys, err := appCtx.Storage.List(ctx, appCtx.Config.Pipeline.IntakePrefix)
		if err != nil {
			storeStatus = "error: " + err.Error()
			health["status"] = "degraded"
		} else {
			health["intake_backlog"] = len(keys)
		}

		health["services"] = gin.H{
			"object_store": storeStatus,
		}

		statusCode := http.StatusOK
		if storeStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
