package usecase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"go.ngs.io/thinfoil-api/internal/domain"
)

// maxPolarPoints bounds the number of angles evaluated in one sweep.
const maxPolarPoints = 2000

// PolarRequest encapsulates an angle-of-attack sweep.
type PolarRequest struct {
	Code  string
	Start float64
	End   float64
	Step  float64
	AnalysisOptions
}

// PolarPoint is the aerodynamic state at one angle of attack.
type PolarPoint struct {
	Alpha          float64 `json:"alpha"`
	Cl             float64 `json:"cl"`
	CmLeadingEdge  float64 `json:"cm_le"`
	CmQuarterChord float64 `json:"cm_c4"`
}

// PolarResponse contains a lift and moment polar and quantities fitted to it.
type PolarResponse struct {
	Designation DesignationInfo   `json:"designation"`
	AngleUnit   string            `json:"angle_unit"`
	Points      []PolarPoint      `json:"points"`
	Fit         PolarFit          `json:"fit"`
	Meta        map[string]string `json:"meta"`
}

// PolarFit holds least-squares fits over the sweep.
type PolarFit struct {
	LiftSlopePerRad   float64 `json:"lift_slope_per_rad"`
	ZeroLiftAngle     float64 `json:"alpha_l0"`
	AerodynamicCenter float64 `json:"x_ac"`
}

// Validate checks that the sweep is well formed.
func (r *PolarRequest) Validate() error {
	_, err := r.pointCount()
	return err
}

// pointCount returns the number of angles in the sweep. The count is bounded
// as a float before conversion so that huge ranges cannot overflow int.
func (r *PolarRequest) pointCount() (int, error) {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"start", r.Start},
		{"end", r.End},
		{"step", r.Step},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return 0, &domain.ConfigurationError{Parameter: v.name, Reason: "must be finite"}
		}
	}
	if !(r.Start < r.End) {
		return 0, &domain.ConfigurationError{Parameter: "range", Reason: "start angle must be before end angle"}
	}
	if r.Step <= 0 {
		return 0, &domain.ConfigurationError{Parameter: "step", Reason: "must be positive"}
	}

	count := math.Floor((r.End-r.Start)/r.Step+1e-9) + 1
	if math.IsNaN(count) || count > maxPolarPoints {
		return 0, &domain.ConfigurationError{
			Parameter: "range",
			Reason:    fmt.Sprintf("sweep exceeds %d points, reduce range or increase step", maxPolarPoints),
		}
	}
	// At least two points because Start < End.
	return max(int(count), 2), nil
}

// Polar evaluates the aerodynamic state over a range of angles of attack.
// The geometry terms are computed once and reused for every angle.
//
// The lift slope and aerodynamic centre are fitted from the sweep rather
// than taken from theory, so they check the solver:
//
//	x_ac = −(dCm_le/dα) / (dCl/dα)
func (uc *AnalysisUseCase) Polar(req PolarRequest) (*PolarResponse, error) {
	d, err := domain.ParseDesignation(req.Code)
	if err != nil {
		return nil, err
	}

	n, err := req.pointCount()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	cfg, err := uc.resolveConfig(req.AnalysisOptions)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	terms, err := uc.geometryTerms(d, cfg)
	if err != nil {
		return nil, err
	}

	alphas := floats.Span(make([]float64, n), req.Start, req.Start+float64(n-1)*req.Step)
	if n == 2 {
		alphas[1] = math.Min(alphas[1], req.End)
	}

	radians := make([]float64, n)
	cls := make([]float64, n)
	cmles := make([]float64, n)
	points := make([]PolarPoint, n)

	for i, alpha := range alphas {
		radians[i] = cfg.AngleUnit.ToRadians(alpha)
		state, err := domain.Solve(terms.At(radians[i]))
		if err != nil {
			return nil, fmt.Errorf("failed to solve %s at alpha=%g %s: %w", d, alpha, cfg.AngleUnit, err)
		}
		cls[i] = state.Cl
		cmles[i] = state.CmLeadingEdge
		points[i] = PolarPoint{
			Alpha:          alpha,
			Cl:             state.Cl,
			CmLeadingEdge:  state.CmLeadingEdge,
			CmQuarterChord: state.CmQuarterChord,
		}
	}

	// Cl = a + b·α, so the fitted zero-lift angle is −a/b.
	clIntercept, clSlope := stat.LinearRegression(radians, cls, nil, false)
	_, cmleSlope := stat.LinearRegression(radians, cmles, nil, false)
	if clSlope == 0 || math.IsNaN(clSlope) {
		return nil, &domain.NumericalError{Quantity: "lift slope", Value: clSlope}
	}

	fit := PolarFit{
		LiftSlopePerRad:   clSlope,
		ZeroLiftAngle:     cfg.AngleUnit.FromRadians(-clIntercept / clSlope),
		AerodynamicCenter: -cmleSlope / clSlope,
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"alpha_l0", fit.ZeroLiftAngle},
		{"x_ac", fit.AerodynamicCenter},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return nil, &domain.NumericalError{Quantity: "fitted " + v.name, Value: v.value}
		}
	}

	return &PolarResponse{
		Designation: describe(d),
		AngleUnit:   cfg.AngleUnit.String(),
		Points:      points,
		Fit:         fit,
		Meta:        meta(cfg),
	}, nil
}
