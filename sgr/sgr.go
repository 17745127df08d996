// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package sgr

import (
	"fmt"
	"io"
)

// SetForeground writes the SGR sequence that selects c as the current
// foreground color. The default color is written as the explicit
// "default foreground" sequence so it always overrides whatever color
// was active before.
func SetForeground(w io.Writer, c Color) error {
	var err error
	switch c.Mode {
	case ColorModeRGB:
		_, err = fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case ColorModeIndexed:
		_, err = fmt.Fprintf(w, "\x1b[38;5;%dm", c.Index)
	default:
		_, err = io.WriteString(w, "\x1b[39m")
	}
	return err
}

// Reset writes the SGR sequence that clears all attributes.
func Reset(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[0m")
	return err
}
