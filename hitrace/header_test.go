// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"bytes"
	"testing"
)

func encodeHeader(magic uint16, fileType uint8, version uint16, reserved uint32) []byte {
	return []byte{
		byte(magic), byte(magic >> 8),
		fileType,
		byte(version), byte(version >> 8),
		byte(reserved), byte(reserved >> 8), byte(reserved >> 16), byte(reserved >> 24),
		0, 0, 0, // pad to the 12-byte header size
	}
}

func TestDecodeHeaderCPUCount(t *testing.T) {
	// CPUCount lives in bits 1-5 of reserved; 4 CPUs -> 4<<1 = 8.
	data := encodeHeader(0xabcd, 1, 2, 4<<1)
	hdr, err := decodeHeader(NewByteReader(bytes.NewReader(data), int64(len(data))))
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if hdr.CPUCount != 4 {
		t.Errorf("CPUCount = %d, want 4", hdr.CPUCount)
	}
	if hdr.Magic != 0xabcd || hdr.FileType != 1 || hdr.Version != 2 {
		t.Errorf("got %+v", hdr)
	}
}

func TestDecodeHeaderInvalidCPUCount(t *testing.T) {
	data := encodeHeader(0, 0, 0, 0) // reserved=0 -> CPUCount=0
	_, err := decodeHeader(NewByteReader(bytes.NewReader(data), int64(len(data))))
	if err == nil {
		t.Fatal("expected error for zero cpu count")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != MalformedRecord {
		t.Errorf("got %v, want MalformedRecord", err)
	}
}

func TestDecodeHeaderTruncated(t *testing.T) {
	_, err := decodeHeader(NewByteReader(bytes.NewReader([]byte{1, 2, 3}), 3))
	if err == nil {
		t.Fatal("expected error for truncated header")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != TruncatedCapture {
		t.Errorf("got %v, want TruncatedCapture", err)
	}
}
