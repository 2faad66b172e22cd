package domain

import (
	"errors"
	"math"
	"testing"
)

// Reference values for NACA 2412 from a 200 000-interval midpoint rule.
const (
	ref2412MeanSlope     = 0.00449288637955127
	ref2412A1            = 0.08149514160091945
	ref2412A2            = 0.013861276466087176
	ref2412A3            = 0.0027722552930967044
	ref2412ZeroLiftAngle = -0.036254684420909594 // −2.0772° in radians.
)

// TestDecomposeGeometry_2412 tests the geometry-only terms against reference values.
func TestDecomposeGeometry_2412(t *testing.T) {
	c := MustParseDesignation("2412").Camber()

	terms, err := DecomposeGeometry(c, 3, DefaultResolution)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"mean slope", terms.MeanSlope, ref2412MeanSlope},
		{"A1", terms.Harmonics[0], ref2412A1},
		{"A2", terms.Harmonics[1], ref2412A2},
		{"A3", terms.Harmonics[2], ref2412A3},
		{"zero-lift angle", terms.ZeroLiftAngle, ref2412ZeroLiftAngle},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.expected) > 1e-8 {
			t.Errorf("%s: expected %.12f, got %.12f", tt.name, tt.expected, tt.got)
		}
	}

	// α_L0 = MeanSlope − A1/2 links the two integrals.
	if diff := terms.ZeroLiftAngle - (terms.MeanSlope - terms.Harmonics[0]/2); math.Abs(diff) > 1e-12 {
		t.Errorf("zero-lift angle inconsistent with A0 and A1 terms: diff %.3e", diff)
	}
}

// TestDecomposeGeometry_ScalesWithCamber tests that the terms are linear in m.
func TestDecomposeGeometry_ScalesWithCamber(t *testing.T) {
	t2, err := DecomposeGeometry(MustParseDesignation("2412").Camber(), 4, 32)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	t4, err := DecomposeGeometry(MustParseDesignation("4412").Camber(), 4, 32)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for n := range t2.Harmonics {
		if math.Abs(t4.Harmonics[n]-2*t2.Harmonics[n]) > 1e-12 {
			t.Errorf("A%d: expected %.12f, got %.12f", n+1, 2*t2.Harmonics[n], t4.Harmonics[n])
		}
	}
	if math.Abs(t4.ZeroLiftAngle-2*t2.ZeroLiftAngle) > 1e-12 {
		t.Errorf("zero-lift angle: expected %.12f, got %.12f", 2*t2.ZeroLiftAngle, t4.ZeroLiftAngle)
	}
}

// TestDecomposeGeometry_Symmetric tests that a symmetric section has no geometry terms.
func TestDecomposeGeometry_Symmetric(t *testing.T) {
	c := MustParseDesignation("0012").Camber()

	for _, order := range []int{2, 5, 20} {
		for _, resolution := range []int{1, 8, 64} {
			terms, err := DecomposeGeometry(c, order, resolution)
			if err != nil {
				t.Fatalf("N=%d res=%d: unexpected error: %v", order, resolution, err)
			}
			if math.Abs(terms.MeanSlope) > 1e-12 {
				t.Errorf("N=%d res=%d: mean slope %.3e", order, resolution, terms.MeanSlope)
			}
			if math.Abs(terms.ZeroLiftAngle) > 1e-12 {
				t.Errorf("N=%d res=%d: zero-lift angle %.3e", order, resolution, terms.ZeroLiftAngle)
			}
			for n, an := range terms.Harmonics {
				if math.Abs(an) > 1e-12 {
					t.Errorf("N=%d res=%d: A%d = %.3e", order, resolution, n+1, an)
				}
			}
		}
	}
}

// TestDecomposeGeometry_InvalidConfig tests configuration errors.
func TestDecomposeGeometry_InvalidConfig(t *testing.T) {
	c := MustParseDesignation("2412").Camber()

	tests := []struct {
		name       string
		order      int
		resolution int
		param      string
	}{
		{"zero order", 0, 64, "order"},
		{"negative order", -3, 64, "order"},
		{"zero resolution", 4, 0, "resolution"},
		{"negative resolution", 4, -1, "resolution"},
		{"order above max", MaxOrder + 1, 64, "order"},
		{"huge order", math.MaxInt, 64, "order"},
		{"resolution above max", 4, MaxResolution + 1, "resolution"},
		{"resolution overflowing grid", 4, math.MaxInt/2 + 1, "resolution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecomposeGeometry(c, tt.order, tt.resolution)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) || cerr.Parameter != tt.param {
				t.Errorf("expected parameter %q in %v", tt.param, err)
			}
		})
	}
}

// TestDecompose_A0DependsOnAlpha tests A0 = α − MeanSlope and that harmonics ignore α.
func TestDecompose_A0DependsOnAlpha(t *testing.T) {
	c := MustParseDesignation("2412").Camber()

	for _, alphaDeg := range []float64{-10, 0, 5, 12} {
		alpha := Deg2Rad(alphaDeg)
		f, err := Decompose(c, 3, DefaultResolution, alpha)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if f.Order() != 3 {
			t.Errorf("Order(): expected 3, got %d", f.Order())
		}
		if f.AngleOfAttack != alpha {
			t.Errorf("AngleOfAttack: expected %v, got %v", alpha, f.AngleOfAttack)
		}
		if math.Abs(f.A[0]-(alpha-ref2412MeanSlope)) > 1e-8 {
			t.Errorf("α=%.0f°: A0 expected %.10f, got %.10f", alphaDeg, alpha-ref2412MeanSlope, f.A[0])
		}
		if math.Abs(f.A[1]-ref2412A1) > 1e-8 {
			t.Errorf("α=%.0f°: A1 expected %.10f, got %.10f", alphaDeg, ref2412A1, f.A[1])
		}
	}
}

// TestDecompose_Idempotent tests that repeated decompositions agree.
func TestDecompose_Idempotent(t *testing.T) {
	c := MustParseDesignation("6409").Camber()
	alpha := Deg2Rad(3)

	first, err := Decompose(c, 8, 48, alpha)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Decompose(c, 8, 48, alpha)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for n := range first.A {
			if math.Abs(first.A[n]-again.A[n]) > 1e-15 {
				t.Fatalf("run %d: A%d drifted from %.17g to %.17g", i, n, first.A[n], again.A[n])
			}
		}
	}
}

// TestGeometryTerms_AtDoesNotAlias tests that the cached harmonics are copied out.
func TestGeometryTerms_AtDoesNotAlias(t *testing.T) {
	terms, err := DecomposeGeometry(MustParseDesignation("2412").Camber(), 2, 16)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	a1 := terms.Harmonics[0]

	f := terms.At(0)
	f.A[1] = 42

	if terms.Harmonics[0] != a1 {
		t.Errorf("mutating coefficients changed cached A1 to %v", terms.Harmonics[0])
	}
}

// TestDecomposeGeometry_Converges tests that a coarse grid is already close to the reference.
func TestDecomposeGeometry_Converges(t *testing.T) {
	c := MustParseDesignation("2412").Camber()

	coarse, err := DecomposeGeometry(c, 2, 8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(coarse.Harmonics[0]-ref2412A1) > 1e-6 {
		t.Errorf("A1 with 8 nodes per panel: expected %.10f, got %.10f", ref2412A1, coarse.Harmonics[0])
	}
	if math.Abs(coarse.ZeroLiftAngle-ref2412ZeroLiftAngle) > 1e-6 {
		t.Errorf("α_L0 with 8 nodes per panel: expected %.10f, got %.10f", ref2412ZeroLiftAngle, coarse.ZeroLiftAngle)
	}
}
