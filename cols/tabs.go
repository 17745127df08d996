// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cols

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ExpandTabs replaces every tab in s with the spaces needed to reach
// the next multiple of tabWidth, advancing the cursor by display width
// rather than byte or rune count. A tab sitting exactly on a stop
// advances a full tabWidth. When tabWidth is zero or negative the line
// is returned unchanged and tabs pass through verbatim.
func ExpandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + tabWidth)
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
