// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "encoding/binary"

// layout is a compact fixed-record descriptor, one letter per field:
//
//	B  1-byte unsigned
//	H  2-byte unsigned, little-endian
//	I  4-byte unsigned, little-endian ("L" is accepted as a synonym,
//	   matching the 32-bit struct codes used by the capture format)
//	Q  8-byte unsigned, little-endian
//
// This mirrors bufDecoder's fixed-width accessors in the teacher
// package, generalized to a descriptor string because the capture
// format's headers mix widths record by record rather than having one
// fixed Go struct per record (CaptureHeader is "HBHL", PageHeader is
// "QQB", EventHeader is "LH", the segment prefix is "II").
type layout string

func (l layout) size() int {
	n := 0
	for _, c := range l {
		n += fieldSize(byte(c))
	}
	return n
}

func fieldSize(c byte) int {
	switch c {
	case 'B':
		return 1
	case 'H':
		return 2
	case 'I', 'L':
		return 4
	case 'Q':
		return 8
	default:
		return 0
	}
}

// unpack decodes data, whose length must equal layout.size(), into one
// uint64 per field in order. It fails with a MalformedRecord
// DecodeError when the byte length mismatches, per §4.2.
func unpack(l layout, data []byte, offset int64) ([]uint64, error) {
	want := l.size()
	if len(data) != want {
		return nil, newDecodeError(MalformedRecord, offset,
			"layout %q wants %d bytes, got %d", string(l), want, len(data))
	}
	out := make([]uint64, 0, len(l))
	pos := 0
	for _, c := range l {
		switch byte(c) {
		case 'B':
			out = append(out, uint64(data[pos]))
			pos++
		case 'H':
			out = append(out, uint64(binary.LittleEndian.Uint16(data[pos:])))
			pos += 2
		case 'I', 'L':
			out = append(out, uint64(binary.LittleEndian.Uint32(data[pos:])))
			pos += 4
		case 'Q':
			out = append(out, binary.LittleEndian.Uint64(data[pos:]))
			pos += 8
		}
	}
	return out, nil
}
