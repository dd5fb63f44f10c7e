// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

// headerLayout describes CaptureHeader: 16-bit magic, 8-bit file type,
// 16-bit version, 32-bit reserved. It covers the first 9 of the
// header's 12 bytes; the last 3 bytes are read but not decoded.
const headerLayout layout = "HBHL"
const headerSize = 12

// CaptureHeader is the fixed 12-byte capture-file header.
type CaptureHeader struct {
	Magic    uint16
	FileType uint8
	Version  uint16
	Reserved uint32

	// CPUCount is bits 1-5 of Reserved (shifted right by 1,
	// masked with 0x1F). Per spec.md §9's Open Question, this
	// implementation follows the object-oriented reference pass
	// (5-bit mask), not the procedural pass's narrower 4-bit mask.
	CPUCount int
}

func decodeHeader(r *ByteReader) (CaptureHeader, error) {
	data, err := r.Read(headerSize)
	if err != nil {
		return CaptureHeader{}, newDecodeError(TruncatedCapture, r.Pos(), "reading capture header: %v", err)
	}
	vals, err := unpack(headerLayout, data[:headerLayout.size()], r.Pos())
	if err != nil {
		return CaptureHeader{}, err
	}
	h := CaptureHeader{
		Magic:    uint16(vals[0]),
		FileType: uint8(vals[1]),
		Version:  uint16(vals[2]),
		Reserved: uint32(vals[3]),
	}
	h.CPUCount = int((h.Reserved >> 1) & 0x1F)
	if h.CPUCount < 1 {
		return h, newDecodeError(MalformedRecord, r.Pos(), "bad cpu count %d in header", h.CPUCount)
	}
	return h, nil
}
