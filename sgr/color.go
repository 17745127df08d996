// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/color.go
// Summary: Terminal color model and capability-aware color reduction.

// Package sgr converts highlight colors into ANSI SGR escape sequences,
// downsampling to the xterm 256-color palette when the terminal cannot
// do 24-bit color.
package sgr

// RGBA is a foreground color as produced by the highlighter. An alpha
// of zero means "no color": render with the terminal default.
type RGBA struct {
	R, G, B, A uint8
}

// ColorMode defines the kind of color stored in a Color.
type ColorMode int

const (
	ColorModeDefault ColorMode = iota // terminal default foreground
	ColorModeIndexed                  // 256-color palette index
	ColorModeRGB                      // 24-bit "true" color
)

// Color is a reduced color ready for SGR emission.
type Color struct {
	Mode    ColorMode
	Index   uint8 // palette index when Mode is ColorModeIndexed
	R, G, B uint8 // channels when Mode is ColorModeRGB
}

// Default is the terminal's own foreground color.
var Default = Color{Mode: ColorModeDefault}

// Reduce maps a highlighter color onto what the terminal can show.
// Zero alpha always becomes the default color regardless of capability.
// Otherwise true-color terminals get the channels verbatim and everyone
// else gets the nearest entry of the 256-color palette.
func Reduce(fg RGBA, trueColor bool) Color {
	if fg.A == 0 {
		return Default
	}
	if trueColor {
		return Color{Mode: ColorModeRGB, R: fg.R, G: fg.G, B: fg.B}
	}
	return Color{Mode: ColorModeIndexed, Index: nearest256(fg.R, fg.G, fg.B)}
}
