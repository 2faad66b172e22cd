package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// thicknessCoeffs are the NACA 4-digit half-thickness polynomial
// coefficients for √x, x, x², x³ and x⁴.
var thicknessCoeffs = [5]float64{0.2969, -0.1260, -0.3516, 0.2843, -0.1015}

// Point is a position in chord-normalised coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HalfThickness returns the half-thickness y_t/c at chordwise position x:
//
//	y_t = 5t · (0.2969√x − 0.1260x − 0.3516x² + 0.2843x³ − 0.1015x⁴)
func (d Designation) HalfThickness(x float64) float64 {
	x = math.Max(0, x)
	y := thicknessCoeffs[0] * math.Sqrt(x)
	xn := 1.0
	for i := 1; i < len(thicknessCoeffs); i++ {
		xn *= x
		y += thicknessCoeffs[i] * xn
	}
	return 5 * d.t * y
}

// SurfaceCoordinates returns the section outline from the upper trailing
// edge round the leading edge to the lower trailing edge. Each surface is
// sampled at points chordwise stations; the shared leading-edge station is
// emitted once, giving 2·points − 1 coordinates.
func SurfaceCoordinates(d Designation, points int) ([]Point, error) {
	if points < 2 {
		return nil, &ConfigurationError{Parameter: "points", Reason: fmt.Sprintf("must be at least 2, got %d", points)}
	}

	camber := d.Camber()
	xs := floats.Span(make([]float64, points), 1, 0)

	out := make([]Point, 0, 2*points-1)
	for _, x := range xs {
		out = append(out, surfacePoint(d, camber, x, 1))
	}
	for i := len(xs) - 2; i >= 0; i-- {
		out = append(out, surfacePoint(d, camber, xs[i], -1))
	}
	return out, nil
}

// surfacePoint offsets the camber point at x by the half-thickness normal to
// the camber line; side is +1 for the upper surface and −1 for the lower.
func surfacePoint(d Designation, camber CamberLine, x, side float64) Point {
	yt := d.HalfThickness(x)
	angle := math.Atan(camber.Slope(x))
	return Point{
		X: x - side*yt*math.Sin(angle),
		Y: camber.Height(x) + side*yt*math.Cos(angle),
	}
}

// CamberPoints samples the camber line at points evenly spaced stations
// from leading to trailing edge.
func CamberPoints(d Designation, points int) ([]Point, error) {
	if points < 2 {
		return nil, &ConfigurationError{Parameter: "points", Reason: fmt.Sprintf("must be at least 2, got %d", points)}
	}
	camber := d.Camber()
	xs := floats.Span(make([]float64, points), 0, 1)
	out := make([]Point, len(xs))
	for i, x := range xs {
		out[i] = Point{X: x, Y: camber.Height(x)}
	}
	return out, nil
}
