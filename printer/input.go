// Copyright © 2025 Texelcat contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package printer

import (
	"bufio"
	"io"
	"strings"
)

// lineReader yields logical lines from a byte stream. It reads the
// first line eagerly so language detection can look at it before any
// output is produced, then replays it as the first ReadLine result.
// A pending flag tracks the replay explicitly: an empty first line is
// still a line and must be served, not skipped.
type lineReader struct {
	r       *bufio.Reader
	first   string
	pending bool
}

func newLineReader(r *bufio.Reader) (*lineReader, error) {
	in := &lineReader{r: r}
	line, ok, err := in.next()
	if err != nil {
		return nil, err
	}
	if ok {
		in.first = line
		in.pending = true
	}
	return in, nil
}

// FirstLine returns the first line of the input, or the empty string
// for empty input. It stays available after the line has been served.
func (in *lineReader) FirstLine() string {
	return in.first
}

// ReadLine returns the next logical line with its terminator stripped.
// ok is false once the stream is exhausted. Read failures surface
// immediately; nothing is retried.
func (in *lineReader) ReadLine() (line string, ok bool, err error) {
	if in.pending {
		in.pending = false
		return in.first, true, nil
	}
	return in.next()
}

func (in *lineReader) next() (string, bool, error) {
	line, err := in.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if line == "" {
		return "", false, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
