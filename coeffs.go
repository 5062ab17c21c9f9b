package main

// coeffGrids holds the per-cell physical coefficients of the wave family,
// precomputed once from the mask: tc is the Courant number, tcc its square,
// tgamma the damping and tkappa the elastic restoring term. They are
// read-only during stepping.
type coeffGrids struct {
	tc     []float64
	tcc    []float64
	tgamma []float64
	tkappa []float64
}

// newCoeffGrids derives the coefficient grids from the mask. Both media share
// the primary propagation speed; medium B differs in damping and elasticity.
// Outside cells keep zero coefficients unless two-speeds mode merges them
// into a slower secondary medium.
func newCoeffGrids(cfg *simConfig, mask *domainMask) *coeffGrids {
	n := mask.nx * mask.ny
	co := &coeffGrids{
		tc:     make([]float64, n),
		tcc:    make([]float64, n),
		tgamma: make([]float64, n),
		tkappa: make([]float64, n),
	}
	courant2 := cfg.Courant * cfg.Courant
	courantb2 := cfg.CourantB * cfg.CourantB
	for i, c := range mask.cells {
		switch c {
		case cellMediumA:
			co.tc[i] = cfg.Courant
			co.tcc[i] = courant2
			co.tgamma[i] = cfg.Gamma
			co.tkappa[i] = cfg.Kappa
		case cellMediumB:
			co.tc[i] = cfg.Courant
			co.tcc[i] = courant2
			co.tgamma[i] = cfg.GammaB
			co.tkappa[i] = cfg.KappaB
		default:
			if cfg.TwoSpeeds {
				co.tc[i] = cfg.CourantB
				co.tcc[i] = courantb2
				co.tgamma[i] = cfg.GammaB
				co.tkappa[i] = cfg.KappaB
			}
		}
	}
	return co
}
