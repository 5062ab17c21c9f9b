package main

import "flag"

// Command-line flags controlling the grid, the PDE family, boundary handling,
// and optional runtime behavior. Every flag maps onto one simConfig field.
var (
	// gridWidthFlag and gridHeightFlag set the lattice resolution.
	gridWidthFlag  = flag.Int("nx", defaultNX, "number of grid points on the x axis")
	gridHeightFlag = flag.Int("ny", defaultNY, "number of grid points on the y axis")

	// equationFlag selects the PDE family to integrate.
	equationFlag = flag.String("equation", "wave", "equation family: wave or quantum")

	// boundaryFlag selects how the grid edges are updated.
	boundaryFlag = flag.String("boundary", "dirichlet", "boundary condition: dirichlet, periodic, absorbing or mixed")

	// domainFlag picks the billiard shape the field is confined to.
	domainFlag = flag.String("domain", "ellipse", "billiard shape: rectangle, ellipse, stadium, sinai, annulus, polygon, young or flat")

	// initFlag selects the wave initial condition.
	initFlag = flag.String("init", "drop", "wave initial condition: drop or planar")

	// lambdaFlag and muFlag control the dimensions of the billiard.
	lambdaFlag = flag.Float64("lambda", 1.0, "primary size parameter of the billiard shape")
	muFlag     = flag.Float64("mu", 0.05, "secondary size parameter of the billiard shape")

	// npolyFlag and apolyFlag configure the polygon billiard.
	npolyFlag = flag.Int("npoly", 6, "number of sides of the polygon billiard")
	apolyFlag = flag.Float64("apoly", 0.0, "rotation of the polygon billiard, in units of pi/2")

	// courantFlag sets the Courant number of the primary medium.
	courantFlag = flag.Float64("courant", defaultCourant, "Courant number of the primary medium")

	// courantBFlag sets the Courant number of the secondary medium when
	// two-speeds mode is enabled.
	courantBFlag = flag.Float64("courant-b", defaultCourantB, "Courant number of the secondary medium (two-speeds mode)")

	// gammaFlag and kappaFlag set the bulk damping and elastic restoring terms.
	gammaFlag = flag.Float64("gamma", defaultGamma, "damping factor of the primary medium")
	kappaFlag = flag.Float64("kappa", defaultKappa, "elasticity term of the primary medium")

	// gammaBFlag and kappaBFlag set the same terms for the secondary medium.
	gammaBFlag = flag.Float64("gamma-b", defaultGammaB, "damping factor of the secondary medium")
	kappaBFlag = flag.Float64("kappa-b", defaultKappaB, "elasticity term of the secondary medium")

	// twoSpeedsFlag replaces the hard billiard boundary by a second medium
	// with its own propagation speed.
	twoSpeedsFlag = flag.Bool("two-speeds", false, "treat cells outside the billiard as a slower medium instead of a wall")

	// dtFlag sets the Schrödinger integration step.
	dtFlag = flag.Float64("dt", defaultDT, "time increment of the quantum family")

	// floorFlag and vmaxFlag enable the debug amplitude clamp.
	floorFlag = flag.Bool("floor", false, "clamp field amplitude to [-vmax, vmax] after every half step")
	vmaxFlag  = flag.Float64("vmax", defaultVMax, "amplitude bound used by the floor clamp")

	// oscillateLeftFlag drives the left boundary with a sinusoidal excitation.
	oscillateLeftFlag = flag.Bool("oscillate-left", false, "force a sinusoidal excitation on the left boundary")

	// sourcePeriodFlag re-injects a circular wave every N frames.
	sourcePeriodFlag = flag.Int("source-period", 0, "frames between re-injected circular waves (0 disables)")

	// stepsPerFrameFlag controls how many stencil steps run per display frame.
	stepsPerFrameFlag = flag.Int("steps-per-frame", defaultStepsPerFrame, "stencil steps per displayed frame")

	// saveFramesFlag dumps every displayed frame as a PNG into the given directory.
	saveFramesFlag = flag.String("save-frames", "", "directory to write PNG frames into (empty disables)")

	// enableAudioFlag feeds a probe sample of the field into an audio stream.
	enableAudioFlag = flag.Bool("enable-audio", false, "enable experimental audio output from the probe cell")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation speed overlay")

	// cpuProfileFlag records a CPU profile for the lifetime of the run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given file")
)

// configFromFlags assembles and validates a simConfig from the parsed flags.
func configFromFlags() (simConfig, error) {
	cfg := defaultConfig()
	cfg.NX = *gridWidthFlag
	cfg.NY = *gridHeightFlag
	cfg.Domain = *domainFlag
	cfg.InitShape = *initFlag
	cfg.Lambda = *lambdaFlag
	cfg.Mu = *muFlag
	cfg.NPoly = *npolyFlag
	cfg.APoly = *apolyFlag
	cfg.Courant = *courantFlag
	cfg.CourantB = *courantBFlag
	cfg.Gamma = *gammaFlag
	cfg.Kappa = *kappaFlag
	cfg.GammaB = *gammaBFlag
	cfg.KappaB = *kappaBFlag
	cfg.TwoSpeeds = *twoSpeedsFlag
	cfg.DT = *dtFlag
	cfg.Floor = *floorFlag
	cfg.VMax = *vmaxFlag
	cfg.OscillateLeft = *oscillateLeftFlag
	cfg.SourcePeriod = *sourcePeriodFlag
	cfg.StepsPerFrame = *stepsPerFrameFlag

	eq, err := parseEquation(*equationFlag)
	if err != nil {
		return cfg, err
	}
	cfg.Equation = eq

	bc, err := parseBoundary(*boundaryFlag)
	if err != nil {
		return cfg, err
	}
	cfg.Boundary = bc

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
