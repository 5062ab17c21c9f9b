package main

// quantumRows steps the discretized Schrödinger equation over the spans of
// one worker mask. phi and psi are the real and imaginary parts at the same
// time; the update rotates them through the Laplacian of the other component.
// Unlike the wave family, border cells are resolved here rather than in
// separate edge passes: Dirichlet clamps the missing neighbor, periodic wraps
// it, and the absorbing variant switches border cells to a one-sided
// cross-coupled update (an approximation of transparent boundaries). Border
// resolution order is right, top, left, bottom, so corners inherit the first
// matching edge.
func (s *stepper) quantumRows(in, out *fieldBuffers, mask *workerMask) {
	nx, ny := s.nx, s.ny
	periodic := s.cfg.Boundary == bcPeriodic
	absorbing := s.cfg.Boundary == bcAbsorbing
	floor := s.cfg.Floor
	vmax := s.cfg.VMax

	for _, row := range mask.rows {
		y := row.y
		rowBase := y * nx
		var yp, ym int
		if periodic {
			yp = (y + 1) % ny
			ym = (y - 1 + ny) % ny
		} else {
			yp = clampCoord(y+1, 0, ny-1)
			ym = clampCoord(y-1, 0, ny-1)
		}
		upBase := yp * nx
		downBase := ym * nx

		for _, sp := range row.spans {
			for x := sp.start; x <= sp.end; x++ {
				i := rowBase + x
				x0 := in.phi[i]
				y0 := in.psi[i]

				if absorbing && (x == 0 || x == nx-1 || y == 0 || y == ny-1) {
					switch {
					case x == nx-1:
						out.phi[i] = x0 - s.intStep1*(y0-in.psi[i-1])
						out.psi[i] = y0 + s.intStep1*(x0-in.phi[i-1])
					case y == ny-1:
						out.phi[i] = x0 - s.intStep1*(y0-in.psi[i-nx])
						out.psi[i] = y0 + s.intStep1*(x0-in.phi[i-nx])
					case x == 0:
						out.phi[i] = x0 - s.intStep1*(y0-in.psi[i+1])
						out.psi[i] = y0 + s.intStep1*(x0-in.phi[i+1])
					default: // y == 0
						out.phi[i] = x0 - s.intStep1*(y0-in.psi[i+nx])
						out.psi[i] = y0 + s.intStep1*(x0-in.phi[i+nx])
					}
				} else {
					var xp, xm int
					if periodic {
						xp = (x + 1) % nx
						xm = (x - 1 + nx) % nx
					} else {
						xp = clampCoord(x+1, 0, nx-1)
						xm = clampCoord(x-1, 0, nx-1)
					}
					lapPhi := in.phi[rowBase+xp] + in.phi[rowBase+xm] + in.phi[upBase+x] + in.phi[downBase+x] - 4*x0
					lapPsi := in.psi[rowBase+xp] + in.psi[rowBase+xm] + in.psi[upBase+x] + in.psi[downBase+x] - 4*y0
					out.phi[i] = x0 - s.intStep*lapPsi
					out.psi[i] = y0 + s.intStep*lapPhi
				}

				if floor {
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
		}
	}
}
