package main

import "math"

// Edge passes of the wave family. Each edge resolves the missing stencil
// neighbor according to the active boundary condition:
//
//   - dirichlet: the neighbor is dropped (3-neighbor Laplacian; the in-row
//     indices of the top/bottom passes clamp instead of wrapping);
//   - periodic: the neighbor wraps to the opposite edge;
//   - absorbing: one-sided first-order outgoing-wave update toward the
//     interior neighbor. This is an approximation of transparent boundaries,
//     not exact absorption;
//   - mixed: periodic vertically, absorbing at the horizontal ends, with the
//     extra rule that x==0 of the periodic edges always takes the absorbing
//     formula (see the corner test before changing it).
//
// The side passes run over y=1..ny-2 so the four corner cells are always
// written by the top/bottom passes.

// oscillation returns the driven boundary amplitude for the current half
// step.
func (s *stepper) oscillation() float64 {
	return s.cfg.OscAmplitude * math.Cos(float64(s.halfSteps)*s.cfg.OscOmega)
}

// active reports whether the edge cell participates in the update.
func (s *stepper) active(i int) bool {
	return s.cfg.TwoSpeeds || s.mask.cells[i] != cellOutside
}

// leapfrogCell evaluates the damped leapfrog formula with the per-cell
// coefficients at i.
func (s *stepper) leapfrogCell(i int, x0, y0, lap float64) float64 {
	return -y0 + 2*x0 + s.co.tcc[i]*lap - s.co.tkappa[i]*x0 - s.co.tgamma[i]*(x0-y0)
}

// absorbSide evaluates the one-sided outgoing update with the side-edge
// coefficients; inward is the interior neighbor value.
func (s *stepper) absorbSide(i int, x0, y0, inward float64) float64 {
	return x0 - s.co.tc[i]*(x0-inward) - s.cfg.KappaSides*x0 - s.cfg.GammaSides*(x0-y0)
}

// absorbTopBot is absorbSide with the top/bottom edge coefficients.
func (s *stepper) absorbTopBot(i int, x0, y0, inward float64) float64 {
	return x0 - s.co.tc[i]*(x0-inward) - s.cfg.KappaTopBot*x0 - s.cfg.GammaTopBot*(x0-y0)
}

func (s *stepper) leftEdge(in, out *fieldBuffers) {
	nx, ny := s.nx, s.ny
	if s.cfg.OscillateLeft {
		drive := s.oscillation()
		for y := 1; y < ny-1; y++ {
			out.phi[y*nx] = drive
		}
		return
	}
	for y := 1; y < ny-1; y++ {
		i := y * nx
		if !s.active(i) {
			continue
		}
		x0 := in.phi[i]
		y0 := in.psi[i]
		switch s.cfg.Boundary {
		case bcDirichlet:
			lap := in.phi[i+1] + in.phi[i+nx] + in.phi[i-nx] - 3*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcPeriodic:
			lap := in.phi[i+1] + in.phi[i+nx-1] + in.phi[i+nx] + in.phi[i-nx] - 4*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcAbsorbing, bcMixed:
			out.phi[i] = s.absorbSide(i, x0, y0, in.phi[i+1])
		}
		out.psi[i] = x0
	}
}

func (s *stepper) rightEdge(in, out *fieldBuffers) {
	nx, ny := s.nx, s.ny
	for y := 1; y < ny-1; y++ {
		i := y*nx + nx - 1
		if !s.active(i) {
			continue
		}
		x0 := in.phi[i]
		y0 := in.psi[i]
		switch s.cfg.Boundary {
		case bcDirichlet:
			lap := in.phi[i-1] + in.phi[i+nx] + in.phi[i-nx] - 3*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcPeriodic:
			lap := in.phi[i-1] + in.phi[i-(nx-1)] + in.phi[i+nx] + in.phi[i-nx] - 4*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcAbsorbing, bcMixed:
			out.phi[i] = s.absorbSide(i, x0, y0, in.phi[i-1])
		}
		out.psi[i] = x0
	}
}

func (s *stepper) topEdge(in, out *fieldBuffers) {
	nx, ny := s.nx, s.ny
	row := (ny - 1) * nx
	for x := 0; x < nx; x++ {
		i := row + x
		if !s.active(i) {
			continue
		}
		x0 := in.phi[i]
		y0 := in.psi[i]
		switch s.cfg.Boundary {
		case bcDirichlet:
			xp := clampCoord(x+1, 0, nx-1)
			xm := clampCoord(x-1, 0, nx-1)
			lap := in.phi[row+xp] + in.phi[row+xm] + in.phi[i-nx] - 3*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcPeriodic:
			xp := (x + 1) % nx
			xm := (x - 1 + nx) % nx
			lap := in.phi[row+xp] + in.phi[row+xm] + in.phi[i-nx] + in.phi[x] - 4*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcAbsorbing:
			out.phi[i] = s.absorbTopBot(i, x0, y0, in.phi[i-nx])
		case bcMixed:
			if x == 0 {
				out.phi[i] = s.absorbSide(i, x0, y0, in.phi[row+1])
			} else {
				xp := clampCoord(x+1, 0, nx-1)
				xm := clampCoord(x-1, 0, nx-1)
				lap := in.phi[row+xp] + in.phi[row+xm] + in.phi[i-nx] + in.phi[x] - 4*x0
				out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
			}
		}
		out.psi[i] = x0
	}
}

func (s *stepper) bottomEdge(in, out *fieldBuffers) {
	nx, ny := s.nx, s.ny
	wrapRow := (ny - 1) * nx
	for x := 0; x < nx; x++ {
		i := x
		if !s.active(i) {
			continue
		}
		x0 := in.phi[i]
		y0 := in.psi[i]
		switch s.cfg.Boundary {
		case bcDirichlet:
			xp := clampCoord(x+1, 0, nx-1)
			xm := clampCoord(x-1, 0, nx-1)
			lap := in.phi[xp] + in.phi[xm] + in.phi[i+nx] - 3*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcPeriodic:
			xp := (x + 1) % nx
			xm := (x - 1 + nx) % nx
			lap := in.phi[xp] + in.phi[xm] + in.phi[i+nx] + in.phi[wrapRow+x] - 4*x0
			out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
		case bcAbsorbing:
			out.phi[i] = s.absorbTopBot(i, x0, y0, in.phi[i+nx])
		case bcMixed:
			if x == 0 {
				out.phi[i] = s.absorbSide(i, x0, y0, in.phi[1])
			} else {
				xp := clampCoord(x+1, 0, nx-1)
				xm := clampCoord(x-1, 0, nx-1)
				lap := in.phi[xp] + in.phi[xm] + in.phi[i+nx] + in.phi[wrapRow+x] - 4*x0
				out.phi[i] = s.leapfrogCell(i, x0, y0, lap)
			}
		}
		out.psi[i] = x0
	}
}
