package main

// fieldBuffers holds one time level of the simulation. For the wave family
// phi is the displacement at time t and psi the displacement at t-1; for the
// quantum family phi and psi are the real and imaginary parts of the
// wavefunction at the same time.
type fieldBuffers struct {
	phi []float64
	psi []float64
}

func newFieldBuffers(n int) *fieldBuffers {
	return &fieldBuffers{
		phi: make([]float64, n),
		psi: make([]float64, n),
	}
}

// fieldState owns the two buffer pairs the stepper ping-pongs between. The
// front pair is the settled state read by statistics and rendering; the back
// pair is exclusively owned by the stepper during a half step and becomes
// front at the swap.
type fieldState struct {
	nx, ny int
	front  *fieldBuffers
	back   *fieldBuffers
}

// newFieldState allocates both buffer pairs at rest value zero.
func newFieldState(nx, ny int) *fieldState {
	return &fieldState{
		nx:    nx,
		ny:    ny,
		front: newFieldBuffers(nx * ny),
		back:  newFieldBuffers(nx * ny),
	}
}

// swap promotes the freshly written back pair to front.
func (f *fieldState) swap() {
	f.front, f.back = f.back, f.front
}

// idx returns the row-major slice index of cell (x, y).
func (f *fieldState) idx(x, y int) int { return y*f.nx + x }
