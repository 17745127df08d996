// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package syntax

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// SelectLexer resolves the lexer for one input. Priority order: the
// forced language (a lexer name, alias, or bare extension), then the
// filename, then the first line of content. Anything unresolvable
// falls back to plain text; an unknown language is never an error.
//
// Filename detection combines Chroma's glob matching with enry's
// detector, which also weighs shebangs and content when the extension
// alone is ambiguous.
func SelectLexer(language, filename, firstLine string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
		// Bare extension like "rs" or "go".
		if l := lexers.Match("file." + language); l != nil {
			return l
		}
	}
	if filename != "" {
		base := filepath.Base(filename)
		if l := lexers.Match(base); l != nil {
			return l
		}
		if lang := enry.GetLanguage(base, []byte(firstLine)); lang != "" {
			if l := lexers.Get(lang); l != nil {
				return l
			}
		}
	}
	if firstLine != "" {
		if lang := enry.GetLanguage("", []byte(firstLine)); lang != "" {
			if l := lexers.Get(lang); l != nil {
				return l
			}
		}
		if l := lexers.Analyse(firstLine); l != nil {
			return l
		}
	}
	return lexers.Fallback
}
