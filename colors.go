package main

import "math"

// Display color mapping. The wave field maps normalized amplitude onto a hue
// sweep; the quantum field maps phase onto hue and probability density onto
// luminosity. Both divide by the per-frame display scale so the palette
// tracks the field as its energy decays or grows.
const (
	colorSlope      = 1.0
	colorSaturation = 0.9
	hueMean         = 240.0
	hueAmp          = -200.0
)

// colorAmplitude normalizes a field value into [-1, 1].
func colorAmplitude(value, scale float64) float64 {
	a := colorSlope * value / scale
	if a > 1 {
		a = 1
	} else if a < -1 {
		a = -1
	}
	return a
}

// waveColor maps a wave displacement onto an RGB pixel.
func waveColor(value, scale float64) (uint8, uint8, uint8) {
	amp := colorAmplitude(value, scale)
	hue := math.Mod(hueMean+amp*hueAmp, 360.0)
	if hue < 0 {
		hue += 360.0
	}
	return hslToRGB(hue, colorSaturation, 0.5)
}

// quantumColor maps a complex field value onto an RGB pixel: hue follows the
// phase, luminosity the module.
func quantumColor(phi, psi, scale float64) (uint8, uint8, uint8) {
	amp := math.Hypot(phi, psi)
	phase := math.Atan2(psi, phi)
	if phase < 0 {
		phase += 2.0 * math.Pi
	}
	lum := 0.5 * amp / scale
	if lum > 0.5 {
		lum = 0.5
	}
	return hslToRGB(phase*360.0/(2.0*math.Pi), colorSaturation, lum)
}

// hslToRGB converts hue [0,360), saturation and luminosity [0,1] into 8-bit
// RGB channels.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1.0 - math.Abs(2.0*l-1.0)) * s
	hp := h / 60.0
	x := c * (1.0 - math.Abs(math.Mod(hp, 2.0)-1.0))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2.0
	return uint8((r + m) * 255.0), uint8((g + m) * 255.0), uint8((b + m) * 255.0)
}
