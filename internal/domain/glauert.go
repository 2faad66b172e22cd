package domain

import "math"

// GlauertAngle maps chordwise fraction x/c ∈ [0, 1] to θ = arccos(1 − 2x/c).
// θ = 0 at the leading edge and π at the trailing edge.
func GlauertAngle(x float64) float64 {
	arg := 1 - 2*x
	// Clamp for floating point drift just outside the chord.
	arg = math.Max(-1, math.Min(1, arg))
	return math.Acos(arg)
}

// ChordPosition is the inverse transform: x/c = (1 − cos θ) / 2.
func ChordPosition(theta float64) float64 {
	return (1 - math.Cos(theta)) / 2
}
