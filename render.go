package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw composes the field into the pixel buffer, uploads it, and forwards a
// copy to the exporter when frame saving is enabled.
func (g *Game) Draw(screen *ebiten.Image) {
	g.composePixels()
	screen.WritePixels(g.pixels)
	if g.exporter != nil {
		g.exporter.enqueue(g.pixels, g.cfg.NX, g.cfg.NY)
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		simMS := g.lastSimDuration.Seconds() * 1000
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nSteps/frame: %d (+/-)\nSim: %.2f ms\nScale: %.3f",
			fps, tps, g.stepsPerFrame, simMS, g.scale)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// composePixels renders the front buffers into RGBA. Grid row 0 sits at the
// bottom physically, so rows are flipped for the screen. Outside cells are
// drawn as dark wall pixels unless two-speeds mode makes them part of the
// medium.
func (g *Game) composePixels() {
	nx, ny := g.cfg.NX, g.cfg.NY
	if len(g.pixels) != nx*ny*4 {
		g.pixels = make([]byte, nx*ny*4)
	}
	phi := g.field.front.phi
	psi := g.field.front.psi
	quantum := g.cfg.Equation == eqQuantum
	for sy := 0; sy < ny; sy++ {
		j := ny - 1 - sy
		rowBase := j * nx
		pixBase := sy * nx * 4
		for x := 0; x < nx; x++ {
			idx := rowBase + x
			base := pixBase + x*4
			if g.mask.cells[idx] == cellOutside && !g.cfg.TwoSpeeds {
				g.pixels[base] = 30
				g.pixels[base+1] = 40
				g.pixels[base+2] = 80
				g.pixels[base+3] = 255
				continue
			}
			var r, gr, b uint8
			if quantum {
				r, gr, b = quantumColor(phi[idx], psi[idx], g.scale)
			} else {
				r, gr, b = waveColor(phi[idx], g.scale)
			}
			g.pixels[base] = r
			g.pixels[base+1] = gr
			g.pixels[base+2] = b
			g.pixels[base+3] = 255
		}
	}
}
