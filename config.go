package main

import (
	"fmt"
	"strings"
)

// Default simulation parameters. The grid covers the physical rectangle
// [defaultXMin, defaultXMax] x [defaultYMin, defaultYMax]; the Courant number
// is c*DT/DX and controls both speed and stability of the explicit scheme.
const (
	defaultNX = 640
	defaultNY = 360

	defaultXMin = -2.0
	defaultXMax = 2.0
	defaultYMin = -1.125
	defaultYMax = 1.125

	windowScale = 2

	defaultCourant  = 0.06
	defaultCourantB = 0.03

	defaultGamma       = 0.0
	defaultGammaB      = 1.0e-7
	defaultGammaSides  = 1.0e-4
	defaultGammaTopBot = 1.0e-7

	defaultKappa       = 0.0
	defaultKappaB      = 0.0
	defaultKappaSides  = 5.0e-4
	defaultKappaTopBot = 0.0

	// Schrödinger integration step; the effective per-cell step is
	// DT/(dx*dx*hbar) in the bulk and DT/(dx*hbar) on absorbing borders.
	defaultDT   = 1.0e-8
	defaultHbar = 1.0

	defaultVMax = 10.0

	defaultStepsPerFrame = 10
	minStepsPerFrame     = 1
	maxStepsPerFrame     = 2000
	stepsPerFrameDelta   = 10

	defaultOscAmplitude = 0.8
	defaultOscOmega     = 0.005

	// Initial condition of the wave field (gaussian packet times cosine).
	initialAmp        = 0.5
	initialVariance   = 0.0005
	initialWavelength = 0.1

	// Initial coherent state of the quantum field.
	coherentX     = 0.5
	coherentY     = 0.0
	coherentPX    = 40.0
	coherentPY    = 0.0
	coherentScale = 0.25

	defaultTPS = 60.0
)

// equation selects which PDE family the stepper integrates.
type equation int

const (
	eqWave equation = iota
	eqQuantum
)

// boundaryCond selects how the four grid edges are updated.
type boundaryCond int

const (
	bcDirichlet boundaryCond = iota
	bcPeriodic
	bcAbsorbing
	// bcMixed is periodic along the vertical axis and absorbing at the
	// horizontal ends.
	bcMixed
)

// parseEquation maps a flag value onto an equation family.
func parseEquation(s string) (equation, error) {
	switch strings.ToLower(s) {
	case "wave":
		return eqWave, nil
	case "quantum", "schrodinger":
		return eqQuantum, nil
	}
	return 0, fmt.Errorf("unknown equation %q (want wave or quantum)", s)
}

// parseBoundary maps a flag value onto a boundary condition variant.
func parseBoundary(s string) (boundaryCond, error) {
	switch strings.ToLower(s) {
	case "dirichlet":
		return bcDirichlet, nil
	case "periodic":
		return bcPeriodic, nil
	case "absorbing":
		return bcAbsorbing, nil
	case "mixed", "vper-habs":
		return bcMixed, nil
	}
	return 0, fmt.Errorf("unknown boundary condition %q (want dirichlet, periodic, absorbing or mixed)", s)
}

// simConfig collects every option fixed at setup. It is immutable once the
// stepper has been constructed.
type simConfig struct {
	NX, NY int

	XMin, XMax float64
	YMin, YMax float64

	Equation equation
	Boundary boundaryCond

	Domain string
	Lambda float64
	Mu     float64
	NPoly  int
	APoly  float64

	// InitShape selects the wave initial condition: "drop" (a circular drop
	// plus an inverted counter-drop) or "planar" (a plane wave front). The
	// quantum family always starts from a coherent state.
	InitShape string

	Courant  float64
	CourantB float64

	Gamma       float64
	GammaB      float64
	GammaSides  float64
	GammaTopBot float64

	Kappa       float64
	KappaB      float64
	KappaSides  float64
	KappaTopBot float64

	DT   float64
	Hbar float64

	TwoSpeeds bool

	Floor bool
	VMax  float64

	OscillateLeft bool
	OscAmplitude  float64
	OscOmega      float64

	// SourcePeriod re-injects a circular wave every SourcePeriod frames
	// when positive.
	SourcePeriod int

	StepsPerFrame int
}

// defaultConfig returns a config populated with the package defaults.
func defaultConfig() simConfig {
	return simConfig{
		NX:            defaultNX,
		NY:            defaultNY,
		XMin:          defaultXMin,
		XMax:          defaultXMax,
		YMin:          defaultYMin,
		YMax:          defaultYMax,
		Equation:      eqWave,
		Boundary:      bcDirichlet,
		Domain:        "ellipse",
		InitShape:     "drop",
		Lambda:        1.0,
		Mu:            0.05,
		NPoly:         6,
		APoly:         0.0,
		Courant:       defaultCourant,
		CourantB:      defaultCourantB,
		Gamma:         defaultGamma,
		GammaB:        defaultGammaB,
		GammaSides:    defaultGammaSides,
		GammaTopBot:   defaultGammaTopBot,
		Kappa:         defaultKappa,
		KappaB:        defaultKappaB,
		KappaSides:    defaultKappaSides,
		KappaTopBot:   defaultKappaTopBot,
		DT:            defaultDT,
		Hbar:          defaultHbar,
		VMax:          defaultVMax,
		OscAmplitude:  defaultOscAmplitude,
		OscOmega:      defaultOscOmega,
		StepsPerFrame: defaultStepsPerFrame,
	}
}

// Validate rejects configurations the engine cannot step safely.
func (c *simConfig) Validate() error {
	if c.NX < 3 || c.NY < 3 {
		return fmt.Errorf("grid %dx%d too small: the stencil needs at least 3 cells per axis", c.NX, c.NY)
	}
	if c.XMax <= c.XMin || c.YMax <= c.YMin {
		return fmt.Errorf("degenerate physical extents [%g,%g]x[%g,%g]", c.XMin, c.XMax, c.YMin, c.YMax)
	}
	switch c.Boundary {
	case bcDirichlet, bcPeriodic, bcAbsorbing:
	case bcMixed:
		if c.Equation == eqQuantum {
			return fmt.Errorf("mixed boundary condition is not defined for the quantum family")
		}
	default:
		return fmt.Errorf("unknown boundary condition id %d", c.Boundary)
	}
	switch c.Equation {
	case eqWave:
		if c.Courant <= 0 {
			return fmt.Errorf("courant number must be positive, got %g", c.Courant)
		}
		if c.TwoSpeeds && c.CourantB <= 0 {
			return fmt.Errorf("courant number of medium B must be positive, got %g", c.CourantB)
		}
	case eqQuantum:
		if c.DT <= 0 {
			return fmt.Errorf("time step must be positive, got %g", c.DT)
		}
		if c.Hbar <= 0 {
			return fmt.Errorf("hbar must be positive, got %g", c.Hbar)
		}
		if c.TwoSpeeds {
			return fmt.Errorf("two-speeds mode applies to the wave family only")
		}
	default:
		return fmt.Errorf("unknown equation id %d", c.Equation)
	}
	switch c.InitShape {
	case "drop", "planar":
	default:
		return fmt.Errorf("unknown initial condition %q (want drop or planar)", c.InitShape)
	}
	if c.Floor && c.VMax <= 0 {
		return fmt.Errorf("floor clamp needs a positive vmax, got %g", c.VMax)
	}
	if c.StepsPerFrame < 1 {
		return fmt.Errorf("steps per frame must be at least 1, got %d", c.StepsPerFrame)
	}
	if c.SourcePeriod < 0 {
		return fmt.Errorf("source period must not be negative, got %d", c.SourcePeriod)
	}
	return nil
}
