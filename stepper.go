package main

import (
	"runtime"
	"sync"
)

// stepper advances the field by discrete time units. The interior pass runs
// span-parallel on a pool of persistent worker goroutines; the four edge
// passes write disjoint cells and run concurrently after the interior
// barrier. A full step is two half steps ping-ponging between the buffer
// pairs, so every output cell depends only on the previous buffer and no
// synchronization beyond the barriers is needed.
type stepper struct {
	cfg   *simConfig
	mask  *domainMask
	co    *coeffGrids
	field *fieldState

	nx, ny int

	// Quantum integration steps: DT/(dx*dx*hbar) in the bulk and
	// DT/(dx*hbar) on absorbing borders.
	intStep  float64
	intStep1 float64

	workerCount int
	masks       []workerMask

	mu      sync.Mutex
	cond    *sync.Cond
	seq     int
	pending int
	in      *fieldBuffers
	out     *fieldBuffers

	// halfSteps counts half-step invocations and drives the oscillating
	// boundary excitation.
	halfSteps int64
}

// newStepper precomputes coefficients and row masks and launches the worker
// pool. The config must have passed Validate.
func newStepper(cfg *simConfig, lat *lattice, mask *domainMask, field *fieldState) *stepper {
	s := &stepper{
		cfg:         cfg,
		mask:        mask,
		co:          newCoeffGrids(cfg, mask),
		field:       field,
		nx:          lat.nx,
		ny:          lat.ny,
		intStep:     cfg.DT / (lat.dx * lat.dx * cfg.Hbar),
		intStep1:    cfg.DT / (lat.dx * cfg.Hbar),
		workerCount: runtime.NumCPU(),
	}
	if s.workerCount < 1 {
		s.workerCount = 1
	}
	s.cond = sync.NewCond(&s.mu)

	var rows []rowMask
	if cfg.Equation == eqQuantum {
		rows = buildRowMasks(s.nx, s.ny, true, func(x, y int) bool {
			return mask.cells[y*s.nx+x] != cellOutside
		})
	} else {
		rows = buildRowMasks(s.nx, s.ny, false, func(x, y int) bool {
			return cfg.TwoSpeeds || mask.cells[y*s.nx+x] != cellOutside
		})
	}
	s.masks = assignRowMasks(s.workerCount, rows)

	for i := 0; i < s.workerCount; i++ {
		go s.workerLoop(i)
	}
	return s
}

// step advances the field by one full time step (two half steps).
func (s *stepper) step() {
	s.halfStep()
	s.halfStep()
}

// halfStep computes one half step from the front pair into the back pair and
// swaps. The back pair is exclusively owned here until the swap.
func (s *stepper) halfStep() {
	s.halfSteps++
	in, out := s.field.front, s.field.back
	s.runWorkers(in, out)
	if s.cfg.Equation == eqWave {
		s.applyEdges(in, out)
		if s.cfg.Floor {
			s.clampInside(out)
		}
	}
	s.field.swap()
}

// runWorkers wakes the pool, hands it the current buffer pair, and blocks
// until every worker has finished its rows.
func (s *stepper) runWorkers(in, out *fieldBuffers) {
	s.mu.Lock()
	s.in, s.out = in, out
	s.pending = s.workerCount
	s.seq++
	s.cond.Broadcast()
	for s.pending > 0 {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// workerLoop executes the interior stencil for the rows assigned to one
// worker, waking on each half step.
func (s *stepper) workerLoop(index int) {
	last := 0
	s.mu.Lock()
	for {
		for s.seq == last {
			s.cond.Wait()
		}
		last = s.seq
		in, out := s.in, s.out
		var mask workerMask
		if index < len(s.masks) {
			mask = s.masks[index]
		}
		s.mu.Unlock()

		if len(mask.rows) > 0 {
			if s.cfg.Equation == eqQuantum {
				s.quantumRows(in, out, &mask)
			} else {
				s.waveRows(in, out, &mask)
			}
		}

		s.mu.Lock()
		s.pending--
		if s.pending == 0 {
			s.cond.Broadcast()
		}
	}
}

// waveRows steps the damped leapfrog stencil over the interior spans of one
// worker mask.
func (s *stepper) waveRows(in, out *fieldBuffers, mask *workerMask) {
	nx := s.nx
	for _, row := range mask.rows {
		rowBase := row.y * nx
		center := in.phi[rowBase : rowBase+nx]
		prev := in.psi[rowBase : rowBase+nx]
		below := in.phi[rowBase-nx : rowBase]
		above := in.phi[rowBase+nx : rowBase+2*nx]
		outPhi := out.phi[rowBase : rowBase+nx]
		outPsi := out.psi[rowBase : rowBase+nx]
		tcc := s.co.tcc[rowBase : rowBase+nx]
		tgamma := s.co.tgamma[rowBase : rowBase+nx]
		tkappa := s.co.tkappa[rowBase : rowBase+nx]

		for _, sp := range row.spans {
			for x := sp.start; x <= sp.end; x++ {
				x0 := center[x]
				y0 := prev[x]
				lap := center[x-1] + center[x+1] + above[x] + below[x] - 4*x0
				outPhi[x] = -y0 + 2*x0 + tcc[x]*lap - tkappa[x]*x0 - tgamma[x]*(x0-y0)
				outPsi[x] = x0
			}
		}
	}
}

// applyEdges runs the four boundary passes. The side passes cover rows
// 1..ny-2 only, so the corner cells always take the top/bottom formula. The
// passes write disjoint cells and may run concurrently, but all of them read
// the settled input buffer.
func (s *stepper) applyEdges(in, out *fieldBuffers) {
	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); s.leftEdge(in, out) }()
	go func() { defer wg.Done(); s.rightEdge(in, out) }()
	go func() { defer wg.Done(); s.topEdge(in, out) }()
	go func() { defer wg.Done(); s.bottomEdge(in, out) }()
	wg.Wait()

	// The driven excitation also overrides the two left corners written by
	// the top/bottom passes.
	if s.cfg.OscillateLeft {
		drive := s.oscillation()
		out.phi[0] = drive
		out.phi[(s.ny-1)*s.nx] = drive
	}
}

// clampInside limits the freshly written field to [-VMax, VMax] on billiard
// cells. Debug-only stability guard; applied silently.
func (s *stepper) clampInside(out *fieldBuffers) {
	vmax := s.cfg.VMax
	for i, c := range s.mask.cells {
		if c == cellOutside {
			continue
		}
		if out.phi[i] > vmax {
			out.phi[i] = vmax
		} else if out.phi[i] < -vmax {
			out.phi[i] = -vmax
		}
		if out.psi[i] > vmax {
			out.psi[i] = vmax
		} else if out.psi[i] < -vmax {
			out.psi[i] = -vmax
		}
	}
}
