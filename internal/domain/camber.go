package domain

// CamberLine is the NACA 4-digit mean line, piecewise at x/c = p.
//
//	x/c ≤ p: z/c = m/p² · (2p·x − x²)
//	x/c > p: z/c = m/(1−p)² · ((1−2p) + 2p·x − x²)
//
// Evaluation at x/c = p uses the leading-edge branch; both agree there.
type CamberLine struct {
	m, p float64
}

// Symmetric reports whether the camber line is the chord itself.
func (c CamberLine) Symmetric() bool { return c.m == 0 }

// Join returns the chordwise position p where the branches meet.
func (c CamberLine) Join() float64 { return c.p }

// Height returns z/c at chordwise fraction x.
func (c CamberLine) Height(x float64) float64 {
	if c.Symmetric() {
		return 0
	}
	common := 2*c.p*x - x*x
	if x <= c.p {
		return c.m / (c.p * c.p) * common
	}
	q := 1 - c.p
	return c.m / (q * q) * (1 - 2*c.p + common)
}

// Slope returns dz/dx at chordwise fraction x, differentiated analytically.
//
//	x/c ≤ p: dz/dx = 2m/p² · (p − x)
//	x/c > p: dz/dx = 2m/(1−p)² · (p − x)
func (c CamberLine) Slope(x float64) float64 {
	if c.Symmetric() {
		return 0
	}
	if x <= c.p {
		return 2 * c.m / (c.p * c.p) * (c.p - x)
	}
	q := 1 - c.p
	return 2 * c.m / (q * q) * (c.p - x)
}

// SlopeAtTheta returns dz/dx at Glauert angle theta.
func (c CamberLine) SlopeAtTheta(theta float64) float64 {
	return c.Slope(ChordPosition(theta))
}
