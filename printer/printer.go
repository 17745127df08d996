// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: printer/printer.go
// Summary: Renders highlighted source lines as colored half-block runs.

// Package printer drives the texelcat pipeline: lines come in from a
// file or stream, get tab-expanded and highlighted, and leave as runs
// of colored fill glyphs. Whitespace is printed literally so the
// output keeps the shape of the source; everything else is reduced to
// blocks of the token's color.
package printer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/framegrace/texelcat/cols"
	"github.com/framegrace/texelcat/sgr"
	"github.com/framegrace/texelcat/syntax"

	"github.com/alecthomas/chroma/v2"
)

// fillGlyph is the single-column block emitted for each visual column
// of non-whitespace text.
const fillGlyph = "▀"

// Config holds the immutable settings for one Printer.
type Config struct {
	Language  string // forced language name or extension; empty = detect
	Columns   int    // maximum output columns per line; 0 = unlimited
	Tabs      int    // tab stop width; 0 passes tabs through verbatim
	TrueColor bool   // emit 24-bit colors instead of palette indexes
	Theme     string // style name; empty = bundled theme
}

// DefaultConfig returns the stock settings: unlimited columns, 4-column
// tab stops, 256-color output.
func DefaultConfig() Config {
	return Config{Tabs: 4}
}

// Printer renders inputs under one Config. The theme is resolved once
// at construction and shared by every input; each input still gets its
// own highlight session.
type Printer struct {
	cfg   Config
	style *chroma.Style
}

func New(cfg Config) *Printer {
	return &Printer{cfg: cfg, style: syntax.LoadTheme(cfg.Theme)}
}

// PrintFile renders the file at path to w. The filename joins the
// language detection chain, so extensions win over content sniffing.
func (p *Printer) PrintFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	in, err := newLineReader(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	lexer := syntax.SelectLexer(p.cfg.Language, path, in.FirstLine())
	if err := p.print(w, in, syntax.NewSession(lexer, p.style)); err != nil {
		return fmt.Errorf("print %s: %w", path, err)
	}
	return nil
}

// Print renders a stream to w, detecting the language from the first
// line when none is forced.
func (p *Printer) Print(w io.Writer, r io.Reader) error {
	in, err := newLineReader(bufio.NewReader(r))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	lexer := syntax.SelectLexer(p.cfg.Language, "", in.FirstLine())
	return p.print(w, in, syntax.NewSession(lexer, p.style))
}

// print runs the per-line loop. Every line ends with a reset and a
// newline so truncated or colored lines never leak state into the next
// one. Any write or read error aborts the input immediately.
func (p *Printer) print(w io.Writer, in *lineReader, sess *syntax.Session) error {
	for {
		line, ok, err := in.ReadLine()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if p.cfg.Tabs > 0 {
			line = cols.ExpandTabs(line, p.cfg.Tabs)
		}
		if err := p.printLine(w, line, sess); err != nil {
			return err
		}
		if err := sgr.Reset(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
}

// printLine emits one line as alternating whitespace and glyph runs,
// charging each run's truncated width against the column budget. The
// line stops the moment the budget is exhausted. Runs are truncated on
// rune boundaries, so a wide rune straddling the budget is dropped
// whole and the line may finish a column short.
func (p *Printer) printLine(w io.Writer, line string, sess *syntax.Session) error {
	max := p.cfg.Columns
	if max <= 0 {
		max = math.MaxInt
	}
	printed := 0
	for _, region := range sess.Highlight(line) {
		color := sgr.Reduce(region.Style.FG, p.cfg.TrueColor)
		for _, run := range splitRuns(region.Text) {
			text, width := cols.Truncate(run.text, max-printed)
			if run.space {
				// Zero-width whitespace such as raw tabs still
				// prints; it shapes the line without using columns.
				if text != "" {
					if err := sgr.Reset(w); err != nil {
						return err
					}
					if _, err := io.WriteString(w, text); err != nil {
						return err
					}
				}
			} else if width > 0 {
				if err := sgr.SetForeground(w, color); err != nil {
					return err
				}
				if _, err := io.WriteString(w, strings.Repeat(fillGlyph, width)); err != nil {
					return err
				}
			}
			printed += width
			if printed >= max {
				return nil
			}
		}
	}
	return nil
}

// run is a maximal stretch of a region that is either all whitespace
// or all glyphs.
type run struct {
	text  string
	space bool
}

func splitRuns(text string) []run {
	var runs []run
	start := 0
	space := false
	for i, r := range text {
		s := unicode.IsSpace(r)
		if i == 0 {
			space = s
			continue
		}
		if s != space {
			runs = append(runs, run{text: text[start:i], space: space})
			start = i
			space = s
		}
	}
	if start < len(text) {
		runs = append(runs, run{text: text[start:], space: space})
	}
	return runs
}
