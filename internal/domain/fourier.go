package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// GeometryTerms holds the angle-of-attack independent part of the cosine
// series for one camber line, truncation order and grid resolution.
// Values are immutable once returned and safe to share between goroutines.
type GeometryTerms struct {
	Order      int
	Resolution int

	// MeanSlope is (1/π)·∫₀^π dz/dx dθ, so that A0 = α − MeanSlope.
	MeanSlope float64
	// Harmonics holds A1..AN; Harmonics[n-1] is An.
	Harmonics []float64
	// ZeroLiftAngle is α_L0 = −(1/π)·∫₀^π dz/dx·(cos θ − 1) dθ in radians.
	ZeroLiftAngle float64
}

// FourierCoefficients is the series [A0, A1, …, AN] at one angle of attack.
type FourierCoefficients struct {
	AngleOfAttack float64   // Radians.
	A             []float64 // A[0] is A0, A[n] is An.
	ZeroLiftAngle float64   // Radians; geometry only.
}

// Order returns the truncation order N.
func (f FourierCoefficients) Order() int {
	return len(f.A) - 1
}

// angularGrid is a set of Gauss-Legendre nodes on θ ∈ (0, π).
// The interval is split at the camber join so each panel integrates a smooth
// function; no node lies on a panel boundary.
type angularGrid struct {
	theta  []float64
	weight []float64
}

func newAngularGrid(c CamberLine, resolution int) angularGrid {
	bounds := []float64{0, math.Pi}
	if !c.Symmetric() && c.p > 0 && c.p < 1 {
		bounds = []float64{0, GlauertAngle(c.p), math.Pi}
	}

	panels := len(bounds) - 1
	g := angularGrid{
		theta:  make([]float64, resolution*panels),
		weight: make([]float64, resolution*panels),
	}
	rule := quad.Legendre{}
	for i := 0; i < panels; i++ {
		lo, hi := i*resolution, (i+1)*resolution
		rule.FixedLocations(g.theta[lo:hi], g.weight[lo:hi], bounds[i], bounds[i+1])
	}
	return g
}

// DecomposeGeometry integrates the camber slope against the cosine basis
// and returns the geometry-only terms of the series.
//
//	MeanSlope = (1/π)·∫ dz/dx dθ
//	An        = (2/π)·∫ dz/dx·cos(nθ) dθ,   n = 1..N
//	α_L0      = −(1/π)·∫ dz/dx·(cos θ − 1) dθ
//
// The slope is sampled once on the grid and every integral reuses the samples.
func DecomposeGeometry(c CamberLine, order, resolution int) (*GeometryTerms, error) {
	if err := checkGridSize(order, resolution); err != nil {
		return nil, err
	}

	grid := newAngularGrid(c, resolution)

	// Weighted slope samples: w_i · dz/dx(θ_i).
	ws := make([]float64, len(grid.theta))
	for i, theta := range grid.theta {
		ws[i] = c.SlopeAtTheta(theta)
	}
	floats.Mul(ws, grid.weight)

	basis := make([]float64, len(grid.theta))

	terms := &GeometryTerms{
		Order:      order,
		Resolution: resolution,
		MeanSlope:  floats.Sum(ws) / math.Pi,
		Harmonics:  make([]float64, order),
	}
	if err := checkFinite("A0 geometry term", terms.MeanSlope); err != nil {
		return nil, err
	}

	for n := 1; n <= order; n++ {
		for i, theta := range grid.theta {
			basis[i] = math.Cos(float64(n) * theta)
		}
		an := 2 / math.Pi * floats.Dot(ws, basis)
		if err := checkFinite(fmt.Sprintf("A%d", n), an); err != nil {
			return nil, err
		}
		terms.Harmonics[n-1] = an
	}

	for i, theta := range grid.theta {
		basis[i] = math.Cos(theta) - 1
	}
	terms.ZeroLiftAngle = -floats.Dot(ws, basis) / math.Pi
	if err := checkFinite("zero-lift angle", terms.ZeroLiftAngle); err != nil {
		return nil, err
	}

	return terms, nil
}

// At returns the full series at angle of attack alpha (radians).
// Only A0 is recomputed; the harmonics are copied from the cached terms.
func (g *GeometryTerms) At(alpha float64) FourierCoefficients {
	a := make([]float64, len(g.Harmonics)+1)
	a[0] = alpha - g.MeanSlope
	copy(a[1:], g.Harmonics)
	return FourierCoefficients{
		AngleOfAttack: alpha,
		A:             a,
		ZeroLiftAngle: g.ZeroLiftAngle,
	}
}

// Decompose computes the cosine series of camber line c at angle of attack
// alpha (radians), truncated at order with resolution nodes per panel.
func Decompose(c CamberLine, order, resolution int, alpha float64) (FourierCoefficients, error) {
	terms, err := DecomposeGeometry(c, order, resolution)
	if err != nil {
		return FourierCoefficients{}, err
	}
	coeffs := terms.At(alpha)
	if err := checkFinite("A0", coeffs.A[0]); err != nil {
		return FourierCoefficients{}, err
	}
	return coeffs, nil
}
