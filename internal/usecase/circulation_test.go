package usecase

import (
	"errors"
	"math"
	"testing"

	"go.ngs.io/thinfoil-api/internal/domain"
)

// TestCirculation_KuttaJoukowski tests that Cl = 2Γ/(V∞·c) and that γ vanishes at the trailing edge.
func TestCirculation_KuttaJoukowski(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Circulation(CirculationRequest{Code: "2412", Alpha: 5, Speed: 30, Stations: 40})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Abs(resp.Cl-0.7761062560859601) > 1e-9 {
		t.Errorf("Cl: expected 0.7761, got %.10f", resp.Cl)
	}
	if cl := 2 * resp.Circulation / resp.Speed; math.Abs(cl-resp.Cl) > 1e-12 {
		t.Errorf("2Γ/V∞ = %.12f, expected Cl = %.12f", cl, resp.Cl)
	}

	if len(resp.Distribution) != 40 {
		t.Fatalf("expected 40 stations, got %d", len(resp.Distribution))
	}
	first, last := resp.Distribution[0], resp.Distribution[39]
	if !(first.X > 0) {
		t.Errorf("leading edge must be excluded, first station at x=%v", first.X)
	}
	if last.X != 1 || last.Gamma != 0 {
		t.Errorf("trailing edge: expected (1, 0), got (%v, %v)", last.X, last.Gamma)
	}
	for i := 1; i < len(resp.Distribution); i++ {
		if resp.Distribution[i].X <= resp.Distribution[i-1].X {
			t.Fatalf("stations not increasing at %d: %v <= %v", i, resp.Distribution[i].X, resp.Distribution[i-1].X)
		}
	}
}

// TestCirculation_ScalesWithSpeed tests that Γ and γ are proportional to V∞.
func TestCirculation_ScalesWithSpeed(t *testing.T) {
	uc, _ := newTestUseCase()

	slow, err := uc.Circulation(CirculationRequest{Code: "4415", Alpha: 3, Speed: 1, Stations: 10})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	fast, err := uc.Circulation(CirculationRequest{Code: "4415", Alpha: 3, Speed: 2, Stations: 10})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if math.Abs(fast.Circulation-2*slow.Circulation) > 1e-12 {
		t.Errorf("Γ(2V) = %.12f, expected %.12f", fast.Circulation, 2*slow.Circulation)
	}
	for i := range slow.Distribution {
		if math.Abs(fast.Distribution[i].Gamma-2*slow.Distribution[i].Gamma) > 1e-9 {
			t.Errorf("γ at x=%.4f: %.10f, expected %.10f", slow.Distribution[i].X, fast.Distribution[i].Gamma, 2*slow.Distribution[i].Gamma)
		}
	}
	if slow.Cl != fast.Cl {
		t.Errorf("Cl depends on V∞: %v vs %v", slow.Cl, fast.Cl)
	}
}

// TestCirculation_SymmetricZeroIncidence tests that a symmetric section carries no vorticity at α = 0.
func TestCirculation_SymmetricZeroIncidence(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Circulation(CirculationRequest{Code: "0012", Alpha: 0, Speed: 10, Stations: 5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.Circulation != 0 {
		t.Errorf("expected zero circulation, got %v", resp.Circulation)
	}
	for _, p := range resp.Distribution {
		if p.Gamma != 0 {
			t.Errorf("expected γ = 0 at x=%.4f, got %v", p.X, p.Gamma)
		}
	}
}

// TestCirculation_Errors tests request validation.
func TestCirculation_Errors(t *testing.T) {
	uc, _ := newTestUseCase()

	tests := []struct {
		name   string
		req    CirculationRequest
		target error
	}{
		{"bad code", CirculationRequest{Code: "abcd", Speed: 1, Stations: 10}, domain.ErrValidation},
		{"zero speed", CirculationRequest{Code: "2412", Speed: 0, Stations: 10}, domain.ErrConfiguration},
		{"negative speed", CirculationRequest{Code: "2412", Speed: -1, Stations: 10}, domain.ErrConfiguration},
		{"nan speed", CirculationRequest{Code: "2412", Speed: math.NaN(), Stations: 10}, domain.ErrConfiguration},
		{"infinite speed", CirculationRequest{Code: "2412", Speed: math.Inf(1), Stations: 10}, domain.ErrConfiguration},
		{"nan alpha", CirculationRequest{Code: "2412", Alpha: math.NaN(), Speed: 1, Stations: 10}, domain.ErrConfiguration},
		{"no stations", CirculationRequest{Code: "2412", Speed: 1, Stations: 0}, domain.ErrConfiguration},
		{"too many stations", CirculationRequest{Code: "2412", Speed: 1, Stations: maxCirculationStations + 1}, domain.ErrConfiguration},
		{"huge resolution", CirculationRequest{Code: "2412", Speed: 1, Stations: 10, AnalysisOptions: AnalysisOptions{Resolution: intPtr(math.MaxInt)}}, domain.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Circulation(tt.req)
			if err == nil {
				t.Fatalf("expected error, got response %+v", resp)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}
