package main

import "math"

// Field injectors. Each one writes phi and psi for every billiard cell
// through the shared lattice mapping and leaves outside cells at the rest
// value zero, so the field can never disagree with the mask about where the
// domain is.

// initCircularWave seeds the wave field with a circular drop centered at the
// physical point (x, y): a gaussian packet modulated by a radial cosine, with
// the previous time level at rest.
func initCircularWave(f *fieldState, lat *lattice, mask *domainMask, x, y float64) {
	phi := f.front.phi
	psi := f.front.psi
	for j := 0; j < lat.ny; j++ {
		for i := 0; i < lat.nx; i++ {
			idx := lat.idx(i, j)
			if !mask.insideAt(i, j) {
				phi[idx] = 0
				psi[idx] = 0
				continue
			}
			cx, cy := lat.toXY(i, j)
			dist2 := (cx-x)*(cx-x) + (cy-y)*(cy-y)
			phi[idx] = initialAmp * math.Exp(-dist2/initialVariance) * math.Cos(-math.Sqrt(dist2)/initialWavelength)
			psi[idx] = 0
		}
	}
}

// addCircularWave adds a drop with the given prefactor to the existing field
// without resetting it.
func addCircularWave(f *fieldState, lat *lattice, mask *domainMask, factor, x, y float64) {
	phi := f.front.phi
	for j := 0; j < lat.ny; j++ {
		for i := 0; i < lat.nx; i++ {
			if !mask.insideAt(i, j) {
				continue
			}
			cx, cy := lat.toXY(i, j)
			dist2 := (cx-x)*(cx-x) + (cy-y)*(cy-y)
			phi[lat.idx(i, j)] += factor * initialAmp * math.Exp(-dist2/initialVariance) * math.Cos(-math.Sqrt(dist2)/initialWavelength)
		}
	}
}

// initPlanarWave seeds a gaussian-windowed plane wave front at x = x0.
func initPlanarWave(f *fieldState, lat *lattice, mask *domainMask, x0 float64) {
	phi := f.front.phi
	psi := f.front.psi
	for j := 0; j < lat.ny; j++ {
		for i := 0; i < lat.nx; i++ {
			idx := lat.idx(i, j)
			if !mask.insideAt(i, j) {
				phi[idx] = 0
				psi[idx] = 0
				continue
			}
			cx, _ := lat.toXY(i, j)
			dx := cx - x0
			phi[idx] = initialAmp * math.Exp(-dx*dx/initialVariance) * math.Cos(dx*2.0*math.Pi/initialWavelength)
			psi[idx] = 0
		}
	}
}

// initCoherentState seeds the quantum field with a coherent state of position
// (x, y) and momentum (px, py). phi receives the real part, psi the
// imaginary part; the module is floored to keep the phase well defined far
// from the packet.
func initCoherentState(f *fieldState, lat *lattice, mask *domainMask, x, y, px, py, scalex float64) {
	phi := f.front.phi
	psi := f.front.psi
	scale2 := scalex * scalex
	for j := 0; j < lat.ny; j++ {
		for i := 0; i < lat.nx; i++ {
			idx := lat.idx(i, j)
			if !mask.insideAt(i, j) {
				phi[idx] = 0
				psi[idx] = 0
				continue
			}
			cx, cy := lat.toXY(i, j)
			dist2 := (cx-x)*(cx-x) + (cy-y)*(cy-y)
			module := math.Exp(-dist2 / scale2)
			if module < 1.0e-15 {
				module = 1.0e-15
			}
			phase := (px*(cx-x) + py*(cy-y)) / scalex
			phi[idx] = module * math.Cos(phase)
			psi[idx] = module * math.Sin(phase)
		}
	}
}
