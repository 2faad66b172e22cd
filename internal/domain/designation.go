// Package domain implements thin-aerofoil (Glauert) theory for NACA 4-digit
// sections: designation parsing, camber geometry, cosine-series
// decomposition of the camber slope and the derived coefficients.
package domain

import (
	"fmt"
	"math"
)

// Designation is a validated NACA 4-digit aerofoil designation.
// The zero value is not valid; obtain one from ParseDesignation.
type Designation struct {
	code string
	m    float64 // Maximum camber, fraction of chord.
	p    float64 // Chordwise position of maximum camber, fraction of chord.
	t    float64 // Maximum thickness, fraction of chord.
}

// ParseDesignation validates and decodes a 4-digit NACA code such as "2412".
//
//	digit 1      → m = d1 × 0.01
//	digit 2      → p = d2 × 0.1
//	digits 3–4   → t = d3d4 × 0.01
//
// A zero camber position is only accepted for a symmetric section (m = 0).
func ParseDesignation(code string) (Designation, error) {
	if len(code) != 4 {
		return Designation{}, &ValidationError{Code: code, Reason: fmt.Sprintf("expected 4 characters, got %d", len(code))}
	}

	var digits [4]int
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if ch < '0' || ch > '9' {
			return Designation{}, &ValidationError{Code: code, Reason: fmt.Sprintf("non-digit character %q at position %d", ch, i+1)}
		}
		digits[i] = int(ch - '0')
	}

	if digits[1] == 0 && digits[0] != 0 {
		return Designation{}, &ValidationError{Code: code, Reason: "camber position 0 requires zero camber"}
	}

	return Designation{
		code: code,
		m:    float64(digits[0]) / 100,
		p:    float64(digits[1]) / 10,
		t:    float64(10*digits[2]+digits[3]) / 100,
	}, nil
}

// MustParseDesignation is like ParseDesignation but panics on error.
// Intended for fixed codes in tests and package-level values.
func MustParseDesignation(code string) Designation {
	d, err := ParseDesignation(code)
	if err != nil {
		panic(err)
	}
	return d
}

// Code returns the designation as parsed.
func (d Designation) Code() string { return d.code }

// MaxCamber returns m as a fraction of chord.
func (d Designation) MaxCamber() float64 { return d.m }

// CamberPosition returns p as a fraction of chord.
func (d Designation) CamberPosition() float64 { return d.p }

// MaxThickness returns t as a fraction of chord.
// Thin-aerofoil theory does not use it; it only feeds surface geometry.
func (d Designation) MaxThickness() float64 { return d.t }

// Symmetric reports whether the section has no camber.
func (d Designation) Symmetric() bool { return d.m == 0 }

// Encode rebuilds the 4-digit code from the stored (m, p, t).
func (d Designation) Encode() string {
	return fmt.Sprintf("%d%d%02d",
		int(math.Round(d.m*100)),
		int(math.Round(d.p*10)),
		int(math.Round(d.t*100)))
}

func (d Designation) String() string {
	return "NACA " + d.code
}

// Camber returns the mean camber line of the section.
func (d Designation) Camber() CamberLine {
	return CamberLine{m: d.m, p: d.p}
}
