// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "testing"

func TestTimestampColumn(t *testing.T) {
	cases := []struct {
		ns   uint64
		want string
	}{
		{1_000_000_499, "    1.000000"},
		{1_000_000_499 + 1, "    1.000001"},
		{1_000_000_499 + 501, "    1.000001"},
		{999_500, "    0.001000"},
	}
	for _, c := range cases {
		if got := timestampColumn(c.ns); got != c.want {
			t.Errorf("timestampColumn(%d) = %q, want %q", c.ns, got, c.want)
		}
	}
}

func TestCmdlineAndTgidColumns(t *testing.T) {
	cmdLines := map[uint32]string{42: "kworker/0:1"}
	tidGroups := map[uint32]uint32{42: 2}

	got := taskColumn(42, cmdLines) + "-" + leftJustify("42", pidWidth) + tgidColumn(42, tidGroups)
	want := "     kworker/0:1-42    (    2)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTaskColumnIdle(t *testing.T) {
	if got := taskColumn(0, map[uint32]string{0: "should be ignored"}); got != "          <idle>" {
		t.Errorf("got %q", got)
	}
}

func TestTaskColumnUnknown(t *testing.T) {
	if got := taskColumn(99, nil); got != "           <...>" {
		t.Errorf("got %q", got)
	}
}

func TestTgidColumnUnknown(t *testing.T) {
	if got := tgidColumn(99, nil); got != "(-----)" {
		t.Errorf("got %q, want (-----)", got)
	}
}

func TestFlagsColumnAllZero(t *testing.T) {
	if got := flagsColumn(0, 0); got != "...." {
		t.Errorf("flagsColumn(0,0) = %q, want \"....\"", got)
	}
}

func TestFlagsColumnBits(t *testing.T) {
	got := flagsColumn(flagIrqsOff|flagNeedResched|flagHardIRQ, 3)
	if got != "dnh3" {
		t.Errorf("got %q, want dnh3", got)
	}
}
