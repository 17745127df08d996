// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package syntax

import (
	"bytes"
	_ "embed"
	"log"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// The bundled theme leaves plain text, names and punctuation without a
// foreground so they render in the terminal's own color. Only syntactic
// accents carry RGB values.
//
//go:embed theme.xml
var themeXML []byte

// fallbackStyleName is the built-in style used if the bundled theme
// resource cannot be parsed.
const fallbackStyleName = "monokai"

// LoadTheme resolves a theme name to a Chroma style. The empty name
// selects the bundled theme. Unknown names warn and fall back to the
// bundled theme; a run never fails over a theme.
func LoadTheme(name string) *chroma.Style {
	if name != "" {
		if style, ok := styles.Registry[name]; ok {
			return style
		}
		log.Printf("syntax: unknown theme %q, using bundled default", name)
	}
	return parseTheme(themeXML)
}

// parseTheme decodes an XML style definition, degrading to a built-in
// style when the resource is malformed.
func parseTheme(data []byte) *chroma.Style {
	style, err := chroma.NewXMLStyle(bytes.NewReader(data))
	if err != nil {
		log.Printf("syntax: bundled theme unreadable, using %s: %v", fallbackStyleName, err)
		return styles.Get(fallbackStyleName)
	}
	return style
}
