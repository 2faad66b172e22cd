package usecase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"go.ngs.io/thinfoil-api/internal/domain"
)

// DefaultCirculationStations is the number of chordwise stations at which
// the vortex sheet strength is sampled.
const DefaultCirculationStations = 50

// maxCirculationStations bounds the distribution size returned to clients.
const maxCirculationStations = 2000

// CirculationRequest encapsulates a bound-vorticity query.
type CirculationRequest struct {
	Code     string
	Alpha    float64 // In the unit selected by Options.Unit.
	Speed    float64 // Free-stream speed V∞.
	Stations int
	AnalysisOptions
}

// VortexPoint is the vortex sheet strength at one chordwise station.
type VortexPoint struct {
	X     float64 `json:"x"`
	Gamma float64 `json:"gamma"`
}

// CirculationResponse contains the bound circulation and its chordwise
// distribution for one angle of attack.
type CirculationResponse struct {
	Designation  DesignationInfo   `json:"designation"`
	AngleUnit    string            `json:"angle_unit"`
	Alpha        float64           `json:"alpha"`
	Speed        float64           `json:"v_inf"`
	Cl           float64           `json:"cl"`
	Circulation  float64           `json:"circulation"`
	Distribution []VortexPoint     `json:"distribution"`
	Meta         map[string]string `json:"meta"`
}

// Circulation returns the bound circulation per unit chord and the vortex
// sheet strength γ(x) at cosine-spaced stations in (0, 1]. The leading edge
// is excluded because γ is singular there; the last station is the trailing
// edge, where γ = 0.
func (uc *AnalysisUseCase) Circulation(req CirculationRequest) (*CirculationResponse, error) {
	d, err := domain.ParseDesignation(req.Code)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.resolveConfig(req.AnalysisOptions)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if math.IsNaN(req.Alpha) || math.IsInf(req.Alpha, 0) {
		return nil, fmt.Errorf("invalid request: %w", &domain.ConfigurationError{Parameter: "alpha", Reason: "must be finite"})
	}
	if !(req.Speed > 0) || math.IsInf(req.Speed, 0) {
		return nil, fmt.Errorf("invalid request: %w", &domain.ConfigurationError{Parameter: "v_inf", Reason: "must be positive and finite"})
	}
	if req.Stations < 1 || req.Stations > maxCirculationStations {
		return nil, fmt.Errorf("invalid request: %w", &domain.ConfigurationError{
			Parameter: "points",
			Reason:    fmt.Sprintf("must be between 1 and %d, got %d", maxCirculationStations, req.Stations),
		})
	}

	terms, err := uc.geometryTerms(d, cfg)
	if err != nil {
		return nil, err
	}

	coeffs := terms.At(cfg.AngleUnit.ToRadians(req.Alpha))
	cl, err := domain.LiftCoefficient(coeffs)
	if err != nil {
		return nil, fmt.Errorf("failed to solve %s at alpha=%g %s: %w", d, req.Alpha, cfg.AngleUnit, err)
	}
	gamma, err := domain.Circulation(coeffs, req.Speed)
	if err != nil {
		return nil, fmt.Errorf("failed to compute circulation for %s: %w", d, err)
	}

	// θ = 0 is the leading edge, so drop the first node.
	thetas := floats.Span(make([]float64, req.Stations+1), 0, math.Pi)[1:]
	distribution := make([]VortexPoint, len(thetas))
	for i, theta := range thetas {
		x := domain.ChordPosition(theta)
		g, err := domain.VortexStrength(coeffs, x, req.Speed)
		if err != nil {
			return nil, fmt.Errorf("failed to compute vortex strength for %s at x=%.4f: %w", d, x, err)
		}
		distribution[i] = VortexPoint{X: x, Gamma: g}
	}

	return &CirculationResponse{
		Designation:  describe(d),
		AngleUnit:    cfg.AngleUnit.String(),
		Alpha:        req.Alpha,
		Speed:        req.Speed,
		Cl:           cl,
		Circulation:  gamma,
		Distribution: distribution,
		Meta:         meta(cfg),
	}, nil
}
