// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termcaps/termcaps.go
// Summary: Terminal capability probing (color depth, TTY state, size).

// Package termcaps answers what the attached terminal can do. Detection
// is environment-driven so it works the same whether stdout is a real
// PTY or a pipe about to be paged.
package termcaps

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2/terminfo"

	// Pull in the extended terminfo database so uncommon TERM values
	// resolve without a local terminfo installation.
	_ "github.com/gdamore/tcell/v2/terminfo/extended"
	"golang.org/x/term"
)

// TrueColor reports whether the terminal advertises 24-bit color.
// COLORTERM is authoritative when set; otherwise the terminfo entry for
// TERM decides. NO_COLOR turns it off, downgrading output to the
// 256-color palette. The getenv lookup is a parameter so tests can
// inject an environment.
func TrueColor(getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return true
	}
	name := getenv("TERM")
	if name == "" || name == "dumb" {
		return false
	}
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		return false
	}
	return ti.TrueColor
}

// Width returns the column count of the terminal attached to f, or 0
// when f is not a terminal or the size cannot be read.
func Width(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}
