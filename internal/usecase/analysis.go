package usecase

import (
	"fmt"
	"math"

	"go.ngs.io/thinfoil-api/internal/adapter/store"
	"go.ngs.io/thinfoil-api/internal/domain"
)

// AnalysisOptions carries per-request overrides of the default configuration.
// Nil fields fall back to the use case defaults.
type AnalysisOptions struct {
	Order      *int
	Resolution *int
	Unit       string // "deg" or "rad"; empty selects the default unit.
}

// AnalysisRequest encapsulates a single angle-of-attack query.
type AnalysisRequest struct {
	Code  string
	Alpha float64 // In the unit selected by Options.Unit.
	AnalysisOptions
}

// AnalysisResponse contains the aerodynamic state for one angle of attack.
// Angles are reported in the request unit.
type AnalysisResponse struct {
	Designation       DesignationInfo   `json:"designation"`
	AngleUnit         string            `json:"angle_unit"`
	Alpha             float64           `json:"alpha"`
	Cl                float64           `json:"cl"`
	CmLeadingEdge     float64           `json:"cm_le"`
	CmQuarterChord    float64           `json:"cm_c4"`
	ZeroLiftAngle     float64           `json:"alpha_l0"`
	AerodynamicCenter float64           `json:"x_ac"`
	Coefficients      []float64         `json:"coefficients"`
	Meta              map[string]string `json:"meta"`
}

// DesignationInfo describes a parsed designation.
type DesignationInfo struct {
	Code           string  `json:"code"`
	MaxCamber      float64 `json:"max_camber"`
	CamberPosition float64 `json:"camber_position"`
	MaxThickness   float64 `json:"max_thickness"`
	Symmetric      bool    `json:"symmetric"`
}

// AerofoilResponse contains the geometry-only properties of a section.
type AerofoilResponse struct {
	Designation       DesignationInfo   `json:"designation"`
	AngleUnit         string            `json:"angle_unit"`
	ZeroLiftAngle     float64           `json:"alpha_l0"`
	CmQuarterChord    float64           `json:"cm_c4"`
	AerodynamicCenter float64           `json:"x_ac"`
	LiftSlopePerRad   float64           `json:"lift_slope_per_rad"`
	Harmonics         []float64         `json:"harmonics"`
	Meta              map[string]string `json:"meta"`
}

// AnalysisUseCase orchestrates thin-aerofoil analyses.
type AnalysisUseCase struct {
	cache    store.GeometryCache
	defaults domain.AnalysisConfig
}

// NewAnalysisUseCase creates a new analysis use case.
// cache may be nil, in which case every query recomputes the geometry terms.
func NewAnalysisUseCase(cache store.GeometryCache, defaults domain.AnalysisConfig) *AnalysisUseCase {
	return &AnalysisUseCase{
		cache:    cache,
		defaults: defaults,
	}
}

// Defaults returns the default analysis configuration.
func (uc *AnalysisUseCase) Defaults() domain.AnalysisConfig {
	return uc.defaults
}

// resolveConfig merges request overrides into the defaults and validates the result.
func (uc *AnalysisUseCase) resolveConfig(opts AnalysisOptions) (domain.AnalysisConfig, error) {
	cfg := uc.defaults
	if opts.Order != nil {
		cfg.Order = *opts.Order
	}
	if opts.Resolution != nil {
		cfg.Resolution = *opts.Resolution
	}
	if opts.Unit != "" {
		unit, err := domain.ParseAngleUnit(opts.Unit)
		if err != nil {
			return cfg, err
		}
		cfg.AngleUnit = unit
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// geometryTerms returns the geometry-only terms for d, computing and caching them on a miss.
func (uc *AnalysisUseCase) geometryTerms(d domain.Designation, cfg domain.AnalysisConfig) (*domain.GeometryTerms, error) {
	key := store.GeometryKey{Code: d.Code(), Order: cfg.Order, Resolution: cfg.Resolution}
	if uc.cache != nil {
		if terms, ok := uc.cache.Get(key); ok {
			return terms, nil
		}
	}

	terms, err := domain.DecomposeGeometry(d.Camber(), cfg.Order, cfg.Resolution)
	if err != nil {
		return nil, fmt.Errorf("failed to decompose camber of %s: %w", d, err)
	}

	if uc.cache != nil {
		uc.cache.Put(key, terms)
	}
	return terms, nil
}

// Execute performs a single angle-of-attack analysis.
func (uc *AnalysisUseCase) Execute(req AnalysisRequest) (*AnalysisResponse, error) {
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

	terms, err := uc.geometryTerms(d, cfg)
	if err != nil {
		return nil, err
	}

	state, err := domain.Solve(terms.At(cfg.AngleUnit.ToRadians(req.Alpha)))
	if err != nil {
		return nil, fmt.Errorf("failed to solve %s at alpha=%g %s: %w", d, req.Alpha, cfg.AngleUnit, err)
	}

	return &AnalysisResponse{
		Designation:       describe(d),
		AngleUnit:         cfg.AngleUnit.String(),
		Alpha:             req.Alpha,
		Cl:                state.Cl,
		CmLeadingEdge:     state.CmLeadingEdge,
		CmQuarterChord:    state.CmQuarterChord,
		ZeroLiftAngle:     cfg.AngleUnit.FromRadians(state.ZeroLiftAngle),
		AerodynamicCenter: state.AerodynamicCenter,
		Coefficients:      state.Coefficients,
		Meta:              meta(cfg),
	}, nil
}

// Describe returns the geometry-only properties of a designation.
func (uc *AnalysisUseCase) Describe(code string, opts AnalysisOptions) (*AerofoilResponse, error) {
	d, err := domain.ParseDesignation(code)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.resolveConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	terms, err := uc.geometryTerms(d, cfg)
	if err != nil {
		return nil, err
	}

	// Evaluate at zero incidence; the moment about c/4 is independent of α.
	cmc4, err := domain.QuarterChordMoment(terms.At(0))
	if err != nil {
		return nil, fmt.Errorf("failed to compute moment for %s: %w", d, err)
	}

	harmonics := make([]float64, len(terms.Harmonics))
	copy(harmonics, terms.Harmonics)

	return &AerofoilResponse{
		Designation:       describe(d),
		AngleUnit:         cfg.AngleUnit.String(),
		ZeroLiftAngle:     cfg.AngleUnit.FromRadians(terms.ZeroLiftAngle),
		CmQuarterChord:    cmc4,
		AerodynamicCenter: domain.AerodynamicCenter,
		LiftSlopePerRad:   2 * math.Pi,
		Harmonics:         harmonics,
		Meta:              meta(cfg),
	}, nil
}

func describe(d domain.Designation) DesignationInfo {
	return DesignationInfo{
		Code:           d.Code(),
		MaxCamber:      d.MaxCamber(),
		CamberPosition: d.CamberPosition(),
		MaxThickness:   d.MaxThickness(),
		Symmetric:      d.Symmetric(),
	}
}

func meta(cfg domain.AnalysisConfig) map[string]string {
	return map[string]string{
		"model":      "thin_aerofoil_v1",
		"order":      fmt.Sprintf("%d", cfg.Order),
		"resolution": fmt.Sprintf("%d", cfg.Resolution),
	}
}
