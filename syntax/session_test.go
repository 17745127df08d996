// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: syntax/session_test.go
// Summary: Exercises line highlighting to ensure multi-line constructs stay colored.
// Usage: Executed during `go test` to guard against regressions.

package syntax

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

func joinRegions(regions []Region) string {
	var b strings.Builder
	for _, r := range regions {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TestHighlight_RegionsRebuildLine feeds assorted lines through sessions
// with different lexers and checks the core contract: the returned
// regions always concatenate back to the input line.
func TestHighlight_RegionsRebuildLine(t *testing.T) {
	cases := []struct {
		name  string
		lexer chroma.Lexer
		lines []string
	}{
		{"go", lexers.Get("go"), []string{
			"package main",
			"",
			`import "fmt"`,
			"func main() { fmt.Println(\"héllo 世界\") }",
			"\t\tx := 1 // trailing",
		}},
		{"plain", lexers.Fallback, []string{
			"just some words",
			"   leading spaces",
			"tabs\there",
		}},
		{"invalid input", lexers.Get("go"), []string{
			"§§§ not go at all §§§",
			"}}}}{{{{",
		}},
	}
	for _, c := range cases {
		if c.lexer == nil {
			t.Fatalf("%s: lexer not found", c.name)
		}
		s := NewSession(c.lexer, LoadTheme(""))
		for _, line := range c.lines {
			regions := s.Highlight(line)
			if got := joinRegions(regions); got != line {
				t.Errorf("%s: regions rebuild %q, want %q", c.name, got, line)
			}
			for _, r := range regions {
				if r.Text == "" {
					t.Errorf("%s: empty region for line %q", c.name, line)
				}
			}
		}
	}
}

func TestHighlight_EmptyLine(t *testing.T) {
	s := NewSession(lexers.Fallback, LoadTheme(""))
	if regions := s.Highlight(""); joinRegions(regions) != "" {
		t.Errorf("empty line produced text %q", joinRegions(regions))
	}
	// The blank line must still extend the context.
	if len(s.context) != 1 {
		t.Errorf("context length = %d after one line, want 1", len(s.context))
	}
}

// TestHighlight_BlockCommentState checks that grammar state carries
// across lines: the closing line of a multi-line comment is colored as
// a comment even though, alone, it would not parse as one.
func TestHighlight_BlockCommentState(t *testing.T) {
	style := LoadTheme("")
	want := style.Get(chroma.CommentMultiline).Colour
	if !want.IsSet() {
		t.Fatal("bundled theme has no comment color")
	}

	s := NewSession(lexers.Get("go"), style)
	s.Highlight("/* first line of a note")
	regions := s.Highlight("still inside the note */")

	if len(regions) == 0 {
		t.Fatal("no regions for continuation line")
	}
	for _, r := range regions {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		got := r.Style.FG
		if got.A == 0 || got.R != want.Red() || got.G != want.Green() || got.B != want.Blue() {
			t.Errorf("region %q colored %+v, want comment color %s", r.Text, got, want)
		}
	}
}

// TestHighlight_ContextWindowBounded verifies old lines fall out of the
// context window instead of growing it without limit.
func TestHighlight_ContextWindowBounded(t *testing.T) {
	s := NewSession(lexers.Fallback, LoadTheme(""))
	for i := 0; i < maxContextLines+25; i++ {
		s.Highlight("line of text")
	}
	if len(s.context) != maxContextLines {
		t.Errorf("context length = %d, want %d", len(s.context), maxContextLines)
	}
}

// TestHighlight_MultibyteContext checks rune-offset slicing stays
// aligned when earlier lines contain multibyte runes.
func TestHighlight_MultibyteContext(t *testing.T) {
	s := NewSession(lexers.Fallback, LoadTheme(""))
	s.Highlight("日本語のテキスト")
	s.Highlight("más café")
	line := "back to ascii"
	if got := joinRegions(s.Highlight(line)); got != line {
		t.Errorf("regions rebuild %q, want %q", got, line)
	}
}

func TestStyleFor_UnstyledTokenIsDefault(t *testing.T) {
	s := NewSession(lexers.Fallback, LoadTheme(""))
	if st := s.styleFor(chroma.Text); st.FG.A != 0 {
		t.Errorf("plain text style = %+v, want zero alpha", st.FG)
	}
	if st := s.styleFor(chroma.Keyword); st.FG.A == 0 {
		t.Error("keyword style has zero alpha, want a color")
	}
}
