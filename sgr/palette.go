// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package sgr

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// palette256 holds the fixed xterm palette entries 16-255: the 6x6x6
// color cube followed by the 24-step gray ramp. The first 16 entries
// are excluded on purpose: terminals commonly remap them, so matching
// against them would produce theme-dependent output.
var palette256 [240]colorful.Color

func init() {
	for i := 0; i < 216; i++ {
		r := cubeChannel(i / 36)
		g := cubeChannel(i / 6 % 6)
		b := cubeChannel(i % 6)
		palette256[i] = rgbColor(r, g, b)
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		palette256[216+i] = rgbColor(v, v, v)
	}
}

// cubeChannel maps a cube coordinate 0-5 to its channel value.
func cubeChannel(v int) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(55 + 40*v)
}

func rgbColor(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// nearest256 returns the palette index (16-255) perceptually closest to
// the given channels, using CIE-Lab distance. Ties keep the lowest
// index, so the mapping is deterministic.
func nearest256(r, g, b uint8) uint8 {
	target := rgbColor(r, g, b)
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range palette256 {
		if d := target.DistanceLab(c); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(16 + best)
}
