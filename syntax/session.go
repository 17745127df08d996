// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: syntax/session.go
// Summary: Stateful per-run highlighter built on Chroma tokenization.

// Package syntax classifies source lines into styled regions. A Session
// owns the lexer and theme for one input and carries enough history to
// color multi-line constructs (block comments, raw strings) correctly.
package syntax

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"

	"github.com/framegrace/texelcat/sgr"
)

// maxContextLines is the number of previous lines re-fed to the lexer
// ahead of the current one. Tokenizing a window instead of single lines
// lets line-oriented lexers see constructs that span lines.
const maxContextLines = 50

// Style is the visual attribute of a region: a foreground color with
// alpha. Zero alpha means the terminal default foreground.
type Style struct {
	FG sgr.RGBA
}

// Region is a styled slice of a line. The regions returned for a line
// concatenate back to exactly that line, in order, with no gaps.
type Region struct {
	Style Style
	Text  string
}

// Session highlights the lines of one input in order. It is not safe
// for concurrent use; each input gets its own Session.
type Session struct {
	lexer   chroma.Lexer
	style   *chroma.Style
	context []string
}

// NewSession returns a Session using the given lexer and style. The
// lexer is coalesced so adjacent same-type tokens merge into one
// region.
func NewSession(lexer chroma.Lexer, style *chroma.Style) *Session {
	return &Session{
		lexer: chroma.Coalesce(lexer),
		style: style,
	}
}

// Highlight classifies the next line and returns its styled regions.
// Lines must be fed in input order: each call extends the context used
// to tokenize the following ones. Classification failures degrade to a
// single unstyled region, never an error.
func (s *Session) Highlight(line string) []Region {
	var regions []Region
	if line != "" {
		regions = s.highlightWithContext(line)
	}
	s.remember(line)
	return regions
}

// highlightWithContext tokenizes the context window plus the current
// line as one block, then slices out the tokens overlapping the current
// line by rune offset.
func (s *Session) highlightWithContext(line string) []Region {
	var sb strings.Builder
	for _, prev := range s.context {
		sb.WriteString(prev)
		sb.WriteByte('\n')
	}
	start := utf8.RuneCountInString(sb.String())
	sb.WriteString(line)
	sb.WriteByte('\n') // trailing \n for line-oriented patterns

	lineRunes := []rune(line)
	end := start + len(lineRunes)

	tokens, err := chroma.Tokenise(s.lexer, nil, sb.String())
	if err != nil {
		return []Region{{Text: line}}
	}

	regions := make([]Region, 0, 8)
	pos := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		n := utf8.RuneCountInString(tok.Value)
		tokStart := pos
		tokEnd := pos + n
		pos = tokEnd
		if n == 0 || tokEnd <= start {
			continue
		}
		if tokStart >= end {
			break
		}
		lo, hi := tokStart, tokEnd
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		regions = append(regions, Region{
			Style: s.styleFor(tok.Type),
			Text:  string(lineRunes[lo-start : hi-start]),
		})
	}

	// Tokens normally cover the whole block; if the lexer dropped text,
	// pad with an unstyled region so the regions still rebuild the line.
	covered := 0
	for _, r := range regions {
		covered += utf8.RuneCountInString(r.Text)
	}
	if covered < len(lineRunes) {
		regions = append(regions, Region{Text: string(lineRunes[covered:])})
	}
	return regions
}

// styleFor resolves a token type against the theme. Tokens without a
// set color inherit the zero Style, which renders as the terminal
// default.
func (s *Session) styleFor(t chroma.TokenType) Style {
	entry := s.style.Get(t)
	if !entry.Colour.IsSet() {
		return Style{}
	}
	return Style{FG: sgr.RGBA{
		R: entry.Colour.Red(),
		G: entry.Colour.Green(),
		B: entry.Colour.Blue(),
		A: 255,
	}}
}

func (s *Session) remember(line string) {
	s.context = append(s.context, line)
	if len(s.context) > maxContextLines {
		s.context = s.context[len(s.context)-maxContextLines:]
	}
}
