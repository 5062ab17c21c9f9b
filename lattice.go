package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// lattice maps the physical rectangle onto the integer grid. It is the single
// source of truth for the index<->coordinate transform: the mask builder, the
// injectors and the probe placement all go through it, so the field and the
// mask can never be misregistered against each other.
type lattice struct {
	nx, ny int
	xmin   float64
	ymin   float64
	dx, dy float64

	// Precomputed cell coordinates along each axis.
	xs []float64
	ys []float64
}

// newLattice builds the affine transform for an nx x ny grid over the given
// physical extents. Cell (i, j) sits at (xmin + i*dx, ymin + j*dy).
func newLattice(nx, ny int, xmin, xmax, ymin, ymax float64) *lattice {
	l := &lattice{
		nx:   nx,
		ny:   ny,
		xmin: xmin,
		ymin: ymin,
		dx:   (xmax - xmin) / float64(nx),
		dy:   (ymax - ymin) / float64(ny),
		xs:   make([]float64, nx),
		ys:   make([]float64, ny),
	}
	floats.Span(l.xs, xmin, xmax-l.dx)
	floats.Span(l.ys, ymin, ymax-l.dy)
	return l
}

// toXY returns the physical coordinates of cell (i, j).
func (l *lattice) toXY(i, j int) (float64, float64) {
	return l.xs[i], l.ys[j]
}

// toIJ returns the cell nearest to the physical point (x, y), clamped to the
// grid.
func (l *lattice) toIJ(x, y float64) (int, int) {
	i := int(math.Round((x - l.xmin) / l.dx))
	j := int(math.Round((y - l.ymin) / l.dy))
	return clampCoord(i, 0, l.nx-1), clampCoord(j, 0, l.ny-1)
}

// idx returns the row-major slice index of cell (i, j).
func (l *lattice) idx(i, j int) int { return j*l.nx + i }

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
