package usecase

import (
	"fmt"

	"go.ngs.io/thinfoil-api/internal/domain"
)

// DefaultGeometryPoints is the number of chordwise stations per surface.
const DefaultGeometryPoints = 100

// maxGeometryPoints bounds the outline size returned to clients.
const maxGeometryPoints = 5000

// GeometryResponse contains the section outline and mean line.
type GeometryResponse struct {
	Designation DesignationInfo `json:"designation"`
	Surface     []domain.Point  `json:"surface"`
	Camber      []domain.Point  `json:"camber"`
}

// Geometry returns the surface outline and camber line of a designation,
// each sampled at points chordwise stations.
func (uc *AnalysisUseCase) Geometry(code string, points int) (*GeometryResponse, error) {
	d, err := domain.ParseDesignation(code)
	if err != nil {
		return nil, err
	}

	if points > maxGeometryPoints {
		return nil, fmt.Errorf("invalid request: points must be at most %d", maxGeometryPoints)
	}

	surface, err := domain.SurfaceCoordinates(d, points)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	camber, err := domain.CamberPoints(d, points)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	return &GeometryResponse{
		Designation: describe(d),
		Surface:     surface,
		Camber:      camber,
	}, nil
}
