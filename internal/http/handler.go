package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/thinfoil-api/internal/domain"
	"go.ngs.io/thinfoil-api/internal/usecase"
)

// Handler handles HTTP requests for aerofoil analyses.
type Handler struct {
	analysisUC *usecase.AnalysisUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(analysisUC *usecase.AnalysisUseCase) *Handler {
	return &Handler{
		analysisUC: analysisUC,
	}
}

// parseOptions reads the order, resolution and unit query parameters.
func parseOptions(c *gin.Context) (usecase.AnalysisOptions, error) {
	opts := usecase.AnalysisOptions{
		Unit: c.Query("unit"),
	}

	if s := c.Query("order"); s != "" {
		order, err := strconv.Atoi(s)
		if err != nil {
			return opts, fmt.Errorf("invalid order: %v", err)
		}
		opts.Order = &order
	}

	if s := c.Query("resolution"); s != "" {
		resolution, err := strconv.Atoi(s)
		if err != nil {
			return opts, fmt.Errorf("invalid resolution: %v", err)
		}
		opts.Resolution = &resolution
	}

	return opts, nil
}

// requiredFloat parses a required float query parameter.
func requiredFloat(c *gin.Context, name string) (float64, error) {
	s := c.Query(name)
	if s == "" {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return v, nil
}

// writeError maps use case errors to HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, domain.ErrNumerical) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// GetAerofoil handles GET /v1/aerofoils/:code.
func (h *Handler) GetAerofoil(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.analysisUC.Describe(c.Param("code"), opts)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAnalysis handles GET /v1/aerofoils/:code/analysis.
func (h *Handler) GetAnalysis(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alpha, err := requiredFloat(c, "alpha")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.analysisUC.Execute(usecase.AnalysisRequest{
		Code:            c.Param("code"),
		Alpha:           alpha,
		AnalysisOptions: opts,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPolar handles GET /v1/aerofoils/:code/polar.
func (h *Handler) GetPolar(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := usecase.PolarRequest{
		Code:            c.Param("code"),
		AnalysisOptions: opts,
	}

	// Defaults: −10 to 10 in steps of 1 (in the request unit).
	req.Start, req.End, req.Step = -10, 10, 1
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"start", &req.Start},
		{"end", &req.End},
		{"step", &req.Step},
	} {
		if c.Query(p.name) == "" {
			continue
		}
		v, err := requiredFloat(c, p.name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		*p.dst = v
	}

	response, err := h.analysisUC.Polar(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCirculation handles GET /v1/aerofoils/:code/circulation.
func (h *Handler) GetCirculation(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alpha, err := requiredFloat(c, "alpha")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := usecase.CirculationRequest{
		Code:            c.Param("code"),
		Alpha:           alpha,
		Speed:           1,
		Stations:        usecase.DefaultCirculationStations,
		AnalysisOptions: opts,
	}
	if c.Query("v_inf") != "" {
		if req.Speed, err = requiredFloat(c, "v_inf"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if s := c.Query("points"); s != "" {
		if req.Stations, err = strconv.Atoi(s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid points: %v", err)})
			return
		}
	}

	response, err := h.analysisUC.Circulation(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGeometry handles GET /v1/aerofoils/:code/geometry.
func (h *Handler) GetGeometry(c *gin.Context) {
	points := usecase.DefaultGeometryPoints
	if s := c.Query("points"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid points: %v", err)})
			return
		}
		points = v
	}

	response, err := h.analysisUC.Geometry(c.Param("code"), points)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetDefaults handles GET /v1/config.
func (h *Handler) GetDefaults(c *gin.Context) {
	cfg := h.analysisUC.Defaults()
	c.JSON(http.StatusOK, gin.H{
		"order":            cfg.Order,
		"resolution":       cfg.Resolution,
		"angle_unit":       cfg.AngleUnit.String(),
		"min_moment_order": domain.MinMomentOrder,
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
