// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cols/width.go
// Summary: Display-width accounting for terminal output.

// Package cols measures strings in terminal columns and truncates them
// to a column budget. All width math in texelcat goes through this
// package so that cursor accounting and truncation can never disagree.
package cols

import "github.com/mattn/go-runewidth"

// Width returns the number of terminal columns r occupies: 0 for
// combining marks and controls, 2 for East Asian wide runes, 1 for
// everything else.
func Width(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the total column width of s as the sum of its
// per-rune widths. It deliberately ignores grapheme clustering so the
// result always equals what a rune-by-rune cursor would advance.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Truncate returns the longest prefix of s whose column width does not
// exceed budget, together with that width. Runes are atomic: a wide
// rune that would straddle the budget is excluded whole. Zero-width
// runes immediately after the cut point are kept, since they extend the
// prefix without consuming columns.
func Truncate(s string, budget int) (string, int) {
	if budget <= 0 {
		return "", 0
	}
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > budget {
			return s[:i], w
		}
		w += rw
	}
	return s, w
}
