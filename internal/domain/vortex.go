package domain

import (
	"fmt"
	"math"
)

// VortexStrength returns the vortex sheet strength γ at chordwise position x
// for free-stream speed vInf:
//
//	γ(θ) = 2V∞ · [A0·(1 + cos θ)/sin θ + Σ An·sin(nθ)]
//
// The leading edge is singular, so x must lie in (0, 1]. At the trailing
// edge the Kutta condition gives γ = 0.
func VortexStrength(f FourierCoefficients, x, vInf float64) (float64, error) {
	if err := requireOrder(f, 1, "vortex strength"); err != nil {
		return 0, err
	}
	if x <= 0 || x > 1 {
		return 0, &ConfigurationError{Parameter: "chord position", Reason: fmt.Sprintf("%.6f outside (0, 1]", x)}
	}
	if x == 1 {
		return 0, nil
	}

	theta := GlauertAngle(x)
	gamma := f.A[0] * (1 + math.Cos(theta)) / math.Sin(theta)
	for n := 1; n < len(f.A); n++ {
		gamma += f.A[n] * math.Sin(float64(n)*theta)
	}
	gamma *= 2 * vInf

	if err := checkFinite("vortex strength", gamma); err != nil {
		return 0, err
	}
	return gamma, nil
}

// Circulation returns the total bound circulation per unit chord,
// Γ/c = π·V∞·(A0 + A1/2).
func Circulation(f FourierCoefficients, vInf float64) (float64, error) {
	if err := requireOrder(f, 1, "circulation"); err != nil {
		return 0, err
	}
	g := math.Pi * vInf * (f.A[0] + f.A[1]/2)
	if err := checkFinite("circulation", g); err != nil {
		return 0, err
	}
	return g, nil
}
