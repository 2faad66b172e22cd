package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.ngs.io/thinfoil-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(analysisUC *usecase.AnalysisUseCase) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(analysisUC)

	// API v1 routes.
	v1 := router.Group("/v1")
	v1.GET("/config", handler.GetDefaults)

	// Aerofoil queries.
	aerofoils := v1.Group("/aerofoils")
	aerofoils.GET("/:code", handler.GetAerofoil)
	aerofoils.GET("/:code/analysis", handler.GetAnalysis)
	aerofoils.GET("/:code/polar", handler.GetPolar)
	aerofoils.GET("/:code/circulation", handler.GetCirculation)
	aerofoils.GET("/:code/geometry", handler.GetGeometry)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}
