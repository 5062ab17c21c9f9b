package main

import "math"

// fieldVariance returns the mean squared amplitude over billiard cells: phi^2
// for the wave family, phi^2+psi^2 (the probability density) for the quantum
// family. A mask with no inside cells yields zero instead of dividing by
// zero.
func fieldVariance(f *fieldState, mask *domainMask, eq equation) float64 {
	variance := 0.0
	n := 0
	phi := f.front.phi
	psi := f.front.psi
	for i, c := range mask.cells {
		if c == cellOutside {
			continue
		}
		n++
		if eq == eqQuantum {
			variance += phi[i]*phi[i] + psi[i]*psi[i]
		} else {
			variance += phi[i] * phi[i]
		}
	}
	if n == 0 {
		n = 1
	}
	return variance / float64(n)
}

// displayScale converts a variance into the normalization divisor used by the
// renderer, decoupling the color dynamic range from the absolute field
// magnitude.
func displayScale(variance float64) float64 {
	return math.Sqrt(1.0 + variance)
}

// renormalizeField divides the whole field by sqrt(variance) so the mean
// squared amplitude over the billiard returns to one.
func renormalizeField(f *fieldState, mask *domainMask, variance float64) {
	if variance <= 0 {
		return
	}
	stdv := math.Sqrt(variance)
	phi := f.front.phi
	psi := f.front.psi
	for i, c := range mask.cells {
		if c == cellOutside {
			continue
		}
		phi[i] /= stdv
		psi[i] /= stdv
	}
}
