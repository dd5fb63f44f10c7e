// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "testing"

func TestUnpack(t *testing.T) {
	data := []byte{0x34, 0x12, 0x02, 0xef, 0xcd, 0x78, 0x56, 0x34, 0x12}
	vals, err := unpack("HBHL", data, 0)
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	want := []uint64{0x1234, 0x02, 0xcdef, 0x12345678}
	if len(vals) != len(want) {
		t.Fatalf("got %d values, want %d", len(vals), len(want))
	}
	for i, v := range vals {
		if v != want[i] {
			t.Errorf("vals[%d] = %#x, want %#x", i, v, want[i])
		}
	}
}

func TestUnpackSizeMismatch(t *testing.T) {
	_, err := unpack("HBHL", []byte{1, 2, 3}, 7)
	if err == nil {
		t.Fatal("expected error for short buffer")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("got %T, want *DecodeError", err)
	}
	if de.Kind != MalformedRecord {
		t.Errorf("Kind = %v, want MalformedRecord", de.Kind)
	}
	if de.Offset != 7 {
		t.Errorf("Offset = %d, want 7", de.Offset)
	}
}
