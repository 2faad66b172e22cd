// Package main provides the thin-aerofoil analysis HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"go.ngs.io/thinfoil-api/internal/adapter/store"
	"go.ngs.io/thinfoil-api/internal/adapter/store/memory"
	"go.ngs.io/thinfoil-api/internal/domain"
	httpHandler "go.ngs.io/thinfoil-api/internal/http"
	"go.ngs.io/thinfoil-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("thinfoil-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	cfg, err := loadAnalysisConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cacheSize := getEnvInt("GEOMETRY_CACHE_SIZE", 1024)

	log.Printf("Starting thin-aerofoil API server...")
	log.Printf("Port: %s", port)
	log.Printf("Default order: %d", cfg.Order)
	log.Printf("Default resolution: %d", cfg.Resolution)
	log.Printf("Default angle unit: %s", cfg.AngleUnit)
	if cfg.Order < domain.MinMomentOrder {
		log.Printf("  Warning: order %d below %d, moment coefficients need an explicit order", cfg.Order, domain.MinMomentOrder)
	}

	// Initialize geometry cache.
	var cache store.GeometryCache = memory.NewCache(cacheSize)
	log.Printf("Geometry cache initialized (max %d entries)", cacheSize)

	// Initialize use case.
	analysisUC := usecase.NewAnalysisUseCase(cache, cfg)

	// Setup router.
	router := httpHandler.SetupRouter(analysisUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/config")
	log.Printf("  - GET /v1/aerofoils/:code")
	log.Printf("  - GET /v1/aerofoils/:code/analysis")
	log.Printf("  - GET /v1/aerofoils/:code/polar")
	log.Printf("  - GET /v1/aerofoils/:code/circulation")
	log.Printf("  - GET /v1/aerofoils/:code/geometry")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadAnalysisConfig builds the default analysis configuration from the environment.
func loadAnalysisConfig() (domain.AnalysisConfig, error) {
	cfg := domain.DefaultAnalysisConfig()
	cfg.Order = getEnvInt("DEFAULT_ORDER", cfg.Order)
	cfg.Resolution = getEnvInt("DEFAULT_RESOLUTION", cfg.Resolution)

	unit, err := domain.ParseAngleUnit(getEnv("DEFAULT_ANGLE_UNIT", cfg.AngleUnit.String()))
	if err != nil {
		return cfg, err
	}
	cfg.AngleUnit = unit

	return cfg, cfg.Validate()
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s=%q: %v", key, value, err)
	}
	return n
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Thin-Aerofoil API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  thinfoil-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Printf("  DEFAULT_ORDER           Cosine series truncation order N (default: %d, min %d for moments, max %d)\n", domain.DefaultOrder, domain.MinMomentOrder, domain.MaxOrder)
	fmt.Printf("  DEFAULT_RESOLUTION      Quadrature nodes per panel (default: %d, max %d)\n", domain.DefaultResolution, domain.MaxResolution)
	fmt.Println("  DEFAULT_ANGLE_UNIT      deg or rad (default: deg)")
	fmt.Println("  GEOMETRY_CACHE_SIZE     Max cached decompositions, 0 = unbounded (default: 1024)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  thinfoil-api")
	fmt.Println()
	fmt.Println("  # Analyse NACA 2412 at 5 degrees")
	fmt.Println("  curl 'http://localhost:8080/v1/aerofoils/2412/analysis?alpha=5'")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                          Health check")
	fmt.Println("  GET /v1/config                       Default analysis configuration")
	fmt.Println("  GET /v1/aerofoils/:code              Geometry-only properties (alpha_l0, cm_c4, A1..AN)")
	fmt.Println("  GET /v1/aerofoils/:code/analysis     Aerodynamic state at ?alpha=")
	fmt.Println("  GET /v1/aerofoils/:code/polar        Lift and moment polar over ?start=&end=&step=")
	fmt.Println("  GET /v1/aerofoils/:code/circulation  Bound circulation and γ(x) at ?alpha=&v_inf=&points=")
	fmt.Println("  GET /v1/aerofoils/:code/geometry     Surface outline and camber line")
	fmt.Println()
}
