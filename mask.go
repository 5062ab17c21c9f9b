package main

// Cell classes stored in the domain mask. Outside cells are never stepped;
// medium B cells propagate with their own damping (and, in two-speeds mode,
// the mask distinguishes propagation speed only rather than in/out).
const (
	cellOutside uint8 = iota
	cellMediumA
	cellMediumB
)

// domainMask classifies every lattice cell once at setup and is immutable for
// the lifetime of a run.
type domainMask struct {
	nx, ny int
	cells  []uint8
	inside int
}

// buildMask materializes the classifier predicate over every lattice point.
func buildMask(lat *lattice, classify func(x, y float64) uint8) *domainMask {
	m := &domainMask{
		nx:    lat.nx,
		ny:    lat.ny,
		cells: make([]uint8, lat.nx*lat.ny),
	}
	for j := 0; j < lat.ny; j++ {
		for i := 0; i < lat.nx; i++ {
			x, y := lat.toXY(i, j)
			c := classify(x, y)
			m.cells[lat.idx(i, j)] = c
			if c != cellOutside {
				m.inside++
			}
		}
	}
	return m
}

// at returns the class of cell (i, j).
func (m *domainMask) at(i, j int) uint8 { return m.cells[j*m.nx+i] }

// insideAt reports whether cell (i, j) belongs to the billiard.
func (m *domainMask) insideAt(i, j int) bool { return m.cells[j*m.nx+i] != cellOutside }

// span represents an inclusive column range of stencil-active cells in a row.
type span struct{ start, end int }

// rowMask groups the contiguous active spans of a single row.
type rowMask struct {
	y     int
	spans []span
}

// workerMask collects the row masks assigned to one worker goroutine.
type workerMask struct {
	rows []rowMask
}

// buildRowMasks decomposes the grid into per-row spans of cells for which
// active returns true. With full set the decomposition covers every cell;
// otherwise it covers interior cells only (rows and columns 1..n-2), leaving
// the edges to the dedicated boundary passes.
func buildRowMasks(nx, ny int, full bool, active func(x, y int) bool) []rowMask {
	x0, x1 := 1, nx-2
	y0, y1 := 1, ny-2
	if full {
		x0, x1 = 0, nx-1
		y0, y1 = 0, ny-1
	}
	rows := make([]rowMask, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		var spans []span
		in := false
		start := 0
		for x := x0; x <= x1; x++ {
			if active(x, y) {
				if !in {
					in = true
					start = x
				}
				if x == x1 {
					spans = append(spans, span{start: start, end: x})
				}
				continue
			}
			if in {
				spans = append(spans, span{start: start, end: x - 1})
				in = false
			}
		}
		if len(spans) == 0 {
			continue
		}
		rows = append(rows, rowMask{y: y, spans: spans})
	}
	return rows
}

// assignRowMasks distributes row masks across worker goroutines round robin.
func assignRowMasks(workerCount int, rows []rowMask) []workerMask {
	if workerCount < 1 {
		workerCount = 1
	}
	masks := make([]workerMask, workerCount)
	for idx, row := range rows {
		workerIdx := idx % workerCount
		masks[workerIdx].rows = append(masks[workerIdx].rows, row)
	}
	return masks
}
