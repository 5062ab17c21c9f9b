package main

import (
	"math"
	"testing"
)

func newQuantumSim(t *testing.T, nx, ny int, bc boundaryCond) *stepper {
	t.Helper()
	cfg := defaultConfig()
	cfg.NX, cfg.NY = nx, ny
	cfg.Equation = eqQuantum
	cfg.Boundary = bc
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	lat := newLattice(cfg.NX, cfg.NY, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	mask := buildMask(lat, func(x, y float64) uint8 { return cellMediumA })
	field := newFieldState(cfg.NX, cfg.NY)
	return newStepper(&cfg, lat, mask, field)
}

func TestQuantumImpulseRotation(t *testing.T) {
	s := newQuantumSim(t, 10, 10, bcDirichlet)
	center := s.field.idx(5, 5)
	s.field.front.psi[center] = 1.0

	s.halfStep()
	phi := s.field.front.phi
	psi := s.field.front.psi

	// The real part picks up -intStep times the imaginary Laplacian.
	if want := 4.0 * s.intStep; math.Abs(phi[center]-want) > 1e-18 {
		t.Fatalf("center phi = %g, want %g", phi[center], want)
	}
	if psi[center] != 1.0 {
		t.Fatalf("center psi = %g, want unchanged 1", psi[center])
	}
	for _, n := range []int{s.field.idx(4, 5), s.field.idx(6, 5), s.field.idx(5, 4), s.field.idx(5, 6)} {
		if want := -s.intStep; math.Abs(phi[n]-want) > 1e-18 {
			t.Fatalf("neighbor %d phi = %g, want %g", n, phi[n], want)
		}
	}
	if diag := s.field.idx(4, 4); phi[diag] != 0 {
		t.Fatalf("diagonal phi = %g, impulse leaked past the stencil radius", phi[diag])
	}
}

func TestQuantumZeroFieldIsFixedPoint(t *testing.T) {
	for _, bc := range []boundaryCond{bcDirichlet, bcPeriodic, bcAbsorbing} {
		s := newQuantumSim(t, 12, 12, bc)
		for i := 0; i < 10; i++ {
			s.step()
		}
		for i := range s.field.front.phi {
			if s.field.front.phi[i] != 0 || s.field.front.psi[i] != 0 {
				t.Fatalf("boundary %d: cell %d drifted from rest", bc, i)
			}
		}
	}
}

func TestQuantumOutsideCellsUntouched(t *testing.T) {
	cfg := defaultConfig()
	cfg.NX, cfg.NY = 32, 16
	cfg.Equation = eqQuantum
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	lat := newLattice(cfg.NX, cfg.NY, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	mask := buildMask(lat, func(x, y float64) uint8 {
		if x*x+y*y >= 1.0 {
			return cellOutside
		}
		return cellMediumA
	})
	field := newFieldState(cfg.NX, cfg.NY)
	s := newStepper(&cfg, lat, mask, field)

	const sentinel = 7.0
	var wall []int
	for i, c := range mask.cells {
		if c == cellOutside {
			wall = append(wall, i)
			field.front.phi[i] = sentinel
			field.front.psi[i] = sentinel
			field.back.phi[i] = sentinel
			field.back.psi[i] = sentinel
		}
	}
	if len(wall) == 0 {
		t.Fatalf("test mask has no outside cells")
	}

	for i := 0; i < 5; i++ {
		s.step()
	}
	for _, i := range wall {
		if field.front.phi[i] != sentinel || field.front.psi[i] != sentinel {
			t.Fatalf("outside cell %d was written (phi=%g psi=%g)",
				i, field.front.phi[i], field.front.psi[i])
		}
	}
}

func TestQuantumRenormalization(t *testing.T) {
	cfg := defaultConfig()
	cfg.Equation = eqQuantum
	lat := newLattice(cfg.NX, cfg.NY, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	mask := buildMask(lat, func(x, y float64) uint8 { return cellMediumA })
	field := newFieldState(cfg.NX, cfg.NY)
	initCoherentState(field, lat, mask, coherentX, coherentY, coherentPX, coherentPY, coherentScale)

	before := fieldVariance(field, mask, eqQuantum)
	if before <= 0 {
		t.Fatalf("coherent state carries no probability")
	}
	renormalizeField(field, mask, before)
	after := fieldVariance(field, mask, eqQuantum)
	if math.Abs(after-1.0) > 1e-9 {
		t.Fatalf("variance after renormalization = %g, want 1", after)
	}
}
