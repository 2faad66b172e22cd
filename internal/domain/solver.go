package domain

import (
	"fmt"
	"math"
)

// AerodynamicCenter is the chordwise position of the aerodynamic centre
// under thin-aerofoil theory.
const AerodynamicCenter = 0.25

// AerodynamicState is the set of coefficients derived from one series.
// Angles are in radians.
type AerodynamicState struct {
	AngleOfAttack     float64
	Cl                float64
	CmLeadingEdge     float64
	CmQuarterChord    float64
	ZeroLiftAngle     float64
	AerodynamicCenter float64
	Coefficients      []float64
}

func requireOrder(f FourierCoefficients, order int, quantity string) error {
	if f.Order() < order {
		return &ConfigurationError{
			Parameter: "order",
			Quantity:  quantity,
			Reason:    fmt.Sprintf("must be at least %d, got %d", order, f.Order()),
		}
	}
	return nil
}

// LiftCoefficient returns Cl = 2π·(A0 + A1/2).
func LiftCoefficient(f FourierCoefficients) (float64, error) {
	if err := requireOrder(f, 1, "Cl"); err != nil {
		return 0, err
	}
	cl := 2 * math.Pi * (f.A[0] + f.A[1]/2)
	if err := checkFinite("Cl", cl); err != nil {
		return 0, err
	}
	return cl, nil
}

// QuarterChordMoment returns Cm_c/4 = −(π/4)·(A1 − A2).
func QuarterChordMoment(f FourierCoefficients) (float64, error) {
	if err := requireOrder(f, MinMomentOrder, "Cm_c/4"); err != nil {
		return 0, err
	}
	cm := -math.Pi / 4 * (f.A[1] - f.A[2])
	if err := checkFinite("Cm_c/4", cm); err != nil {
		return 0, err
	}
	return cm, nil
}

// LeadingEdgeMoment returns Cm_le = −Cl/4 − (π/4)·(A1 − A2).
func LeadingEdgeMoment(f FourierCoefficients) (float64, error) {
	if err := requireOrder(f, MinMomentOrder, "Cm_le"); err != nil {
		return 0, err
	}
	cl, err := LiftCoefficient(f)
	if err != nil {
		return 0, err
	}
	cmc4, err := QuarterChordMoment(f)
	if err != nil {
		return 0, err
	}
	return -cl/4 + cmc4, nil
}

// MomentAt returns the pitching moment about chordwise point x:
// Cm(x) = Cm_le + x·Cl.
func MomentAt(f FourierCoefficients, x float64) (float64, error) {
	cmle, err := LeadingEdgeMoment(f)
	if err != nil {
		return 0, fmt.Errorf("moment at x/c=%.4f: %w", x, err)
	}
	cl, err := LiftCoefficient(f)
	if err != nil {
		return 0, fmt.Errorf("moment at x/c=%.4f: %w", x, err)
	}
	return cmle + x*cl, nil
}

// Solve derives the full aerodynamic state from a series.
// It needs A1 and A2, so f must have order ≥ MinMomentOrder.
func Solve(f FourierCoefficients) (AerodynamicState, error) {
	cl, err := LiftCoefficient(f)
	if err != nil {
		return AerodynamicState{}, err
	}
	cmc4, err := QuarterChordMoment(f)
	if err != nil {
		return AerodynamicState{}, err
	}
	cmle, err := LeadingEdgeMoment(f)
	if err != nil {
		return AerodynamicState{}, err
	}
	if err := checkFinite("zero-lift angle", f.ZeroLiftAngle); err != nil {
		return AerodynamicState{}, err
	}

	a := make([]float64, len(f.A))
	copy(a, f.A)

	return AerodynamicState{
		AngleOfAttack:     f.AngleOfAttack,
		Cl:                cl,
		CmLeadingEdge:     cmle,
		CmQuarterChord:    cmc4,
		ZeroLiftAngle:     f.ZeroLiftAngle,
		AerodynamicCenter: AerodynamicCenter,
		Coefficients:      a,
	}, nil
}
