package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/vidgrab-go/api/handlers"
	"github.com/yourusername/vidgrab-go/api/middleware"
	"github.com/yourusername/vidgrab-go/internal/app"
)

// SetupRouter sets up the HTTP router for the UI collaborator.
func SetupRouter(
	service *app.MediaService,
	eventHub *handlers.EventHub,
	ytdlpBinary string,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(ytdlpBinary)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		videoHandler := handlers.NewVideoHandler(service, logger)

		videos := v1.Group("/videos")
		{
			videos.POST("/info", videoHandler.GetVideoInfo)
			videos.POST("/download", videoHandler.StartDownload)
		}

		downloads := v1.Group("/downloads")
		{
			downloads.GET("", videoHandler.ListDownloads)
			downloads.GET("/:id", videoHandler.GetDownload)
		}

		// Live progress / diagnostic / completion events
		v1.GET("/events", eventHub.HandleWebSocket)
	}

	return router
}
