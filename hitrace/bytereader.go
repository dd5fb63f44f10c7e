// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "io"

// A ByteReader is a sequential, forward-only reader over a capture
// file. It tracks the read cursor and distinguishes a clean,
// boundary-aligned EOF from a truncation in the middle of a record.
type ByteReader struct {
	r    io.Reader
	pos  int64
	size int64
}

// NewByteReader wraps r, which must yield size bytes total, as a
// ByteReader.
func NewByteReader(r io.Reader, size int64) *ByteReader {
	return &ByteReader{r: r, size: size}
}

// Read reads exactly n bytes. If zero bytes are available, it returns
// io.EOF (a clean end of input — fine at a segment boundary). If
// between 1 and n-1 bytes are available, it returns
// io.ErrUnexpectedEOF, which callers mid-record should treat as a
// TruncatedCapture.
func (b *ByteReader) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(b.r, buf)
	b.pos += int64(got)
	if err != nil {
		return buf[:got], err
	}
	return buf, nil
}

// Remaining reports whether any bytes remain to be read.
func (b *ByteReader) Remaining() bool {
	return b.pos < b.size
}

// Size returns the total size of the underlying capture file.
func (b *ByteReader) Size() int64 {
	return b.size
}

// Pos returns the current read offset, for error reporting.
func (b *ByteReader) Pos() int64 {
	return b.pos
}
