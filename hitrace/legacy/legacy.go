// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legacy implements the text-mode repair pass for
// already-converted trace files whose async/sync marker lines were
// emitted with the wrong delimiter by an older converter. It detects
// those lines by matching two fixed patterns against each line
// reversed, then rewrites just the delimiter — everything else in the
// file passes through untouched.
package legacy

import (
	"io"
	"regexp"
	"strings"
)

// asyncPattern and syncPattern are matched against each line reversed,
// so that what is effectively a "does this line end with this shape"
// test can be written as an ordinary, start-anchored regex. The
// capture groups themselves are never read — only whether the pattern
// matches at all.
var (
	asyncPattern = regexp.MustCompile(`^\s*\d+\s+.*?\|\d+\|[SFC]\s+:.*?\s+:.*?\s+.*?\s+\]\d+\[\s+\)\d+\s*\(\s+\d+?-.*?\s+`)
	syncPattern  = regexp.MustCompile(`^\s*\|\d+\|E\s+:.*?\s+:.*?\s+.*?\s+\]\d+\[\s+\)\d+\s*\(\s+\d+?-.*?\s+`)
)

// Convert reads a text trace file from r and writes the repaired trace
// to w, returning the number of lines it rewrote. Lines matching
// asyncPattern have their last space turned into "|"; lines matching
// syncPattern (checked only when asyncPattern didn't match) have
// trailing whitespace and their final character dropped. Every other
// line is copied through unchanged.
func Convert(r io.Reader, w io.Writer) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	text := string(data)
	hasTrailingNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if hasTrailingNewline {
		lines = lines[:len(lines)-1]
	}

	matched := 0
	var out strings.Builder
	for i, raw := range lines {
		terminator := "\n"
		if i == len(lines)-1 && !hasTrailingNewline {
			terminator = ""
		}
		line := raw + terminator

		switch {
		case asyncPattern.MatchString(reverseString(line)):
			line = strings.TrimRight(line, " ")
			if pos := strings.LastIndex(line, " "); pos >= 0 {
				line = line[:pos] + "|" + line[pos+1:]
			}
			matched++
		case syncPattern.MatchString(reverseString(line)):
			trimmed := strings.TrimRight(line, " \t\r\n\f\v")
			if len(trimmed) > 0 {
				trimmed = trimmed[:len(trimmed)-1]
			}
			line = trimmed + "\n"
			matched++
		}
		out.WriteString(line)
	}

	if _, err := io.WriteString(w, out.String()); err != nil {
		return matched, err
	}
	return matched, nil
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
