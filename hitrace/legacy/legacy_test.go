// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legacy

import (
	"strings"
	"testing"
)

func TestConvertPassesThroughPlainLines(t *testing.T) {
	in := "this is an ordinary trace line\nand another one\n"
	var out strings.Builder
	matched, err := Convert(strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if matched != 0 {
		t.Errorf("matched = %d, want 0", matched)
	}
	if out.String() != in {
		t.Errorf("got %q, want %q", out.String(), in)
	}
}

func TestConvertPreservesMissingTrailingNewline(t *testing.T) {
	in := "no trailing newline here"
	var out strings.Builder
	if _, err := Convert(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if out.String() != in {
		t.Errorf("got %q, want %q", out.String(), in)
	}
}

// reverse mirrors the package's own reverseString, used here to build
// lines that read correctly forwards by construction.
func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func TestConvertAsyncLine(t *testing.T) {
	// target is built to satisfy asyncPattern token by token; forward
	// is its reversal, i.e. the actual line Convert sees (Convert
	// reverses each line before matching).
	const target = "1 |2|S : :  ]3[ )4( 5- "
	if !asyncPattern.MatchString(target) {
		t.Fatalf("constructed fixture does not match asyncPattern; fix the fixture")
	}
	forward := reverse(target)

	var out strings.Builder
	matched, err := Convert(strings.NewReader(forward), &out)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if matched != 1 {
		t.Errorf("matched = %d, want 1", matched)
	}
	trimmed := strings.TrimRight(forward, " ")
	pos := strings.LastIndex(trimmed, " ")
	want := trimmed[:pos] + "|" + trimmed[pos+1:]
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
