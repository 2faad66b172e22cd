package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultOrder is the default truncation order N of the cosine series.
	DefaultOrder = 10
	// DefaultResolution is the default number of quadrature nodes per panel.
	DefaultResolution = 64
	// MinMomentOrder is the smallest truncation order that yields A1 and A2.
	MinMomentOrder = 2
	// MaxOrder bounds the truncation order accepted from callers.
	MaxOrder = 512
	// MaxResolution bounds the quadrature nodes per panel accepted from callers.
	MaxResolution = 8192
)

// AngleUnit selects how angles cross the API boundary.
// Internally every angle is in radians.
type AngleUnit int

const (
	// Degrees expresses angles in degrees.
	Degrees AngleUnit = iota
	// Radians expresses angles in radians.
	Radians
)

// ParseAngleUnit parses "deg", "degrees", "rad" or "radians".
// An empty string selects Degrees.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return Degrees, &ConfigurationError{Parameter: "angle unit", Reason: fmt.Sprintf("unknown unit %q (expected deg or rad)", s)}
	}
}

func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// ToRadians converts v expressed in u to radians.
func (u AngleUnit) ToRadians(v float64) float64 {
	if u == Degrees {
		return Deg2Rad(v)
	}
	return v
}

// FromRadians converts v in radians to u.
func (u AngleUnit) FromRadians(v float64) float64 {
	if u == Degrees {
		return Rad2Deg(v)
	}
	return v
}

// AnalysisConfig holds the settings for one thin-aerofoil analysis.
// It is passed explicitly to each analysis so concurrent analyses with
// different settings never share state.
type AnalysisConfig struct {
	Order      int       // Truncation order N of the cosine series.
	Resolution int       // Gauss-Legendre nodes per integration panel.
	AngleUnit  AngleUnit // Unit for angles entering and leaving the API.
}

// DefaultAnalysisConfig returns the default analysis configuration.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Order:      DefaultOrder,
		Resolution: DefaultResolution,
		AngleUnit:  Degrees,
	}
}

// Validate checks that the configuration can drive a decomposition.
func (c AnalysisConfig) Validate() error {
	if err := checkGridSize(c.Order, c.Resolution); err != nil {
		return err
	}
	if c.AngleUnit != Degrees && c.AngleUnit != Radians {
		return &ConfigurationError{Parameter: "angle unit", Reason: c.AngleUnit.String()}
	}
	return nil
}

// checkGridSize bounds the truncation order and grid resolution.
func checkGridSize(order, resolution int) error {
	if order < 1 || order > MaxOrder {
		return &ConfigurationError{Parameter: "order", Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxOrder, order)}
	}
	if resolution < 1 || resolution > MaxResolution {
		return &ConfigurationError{Parameter: "resolution", Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxResolution, resolution)}
	}
	return nil
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
