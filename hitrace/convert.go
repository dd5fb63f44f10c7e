// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "io"

// Convert reads a binary capture file from r (size bytes total) and
// writes its rendered ftrace-compatible trace to w. Diagnostics — the
// per-event-id summary and any segments, pages, or events skipped for
// a local (non-fatal) decode error — are written to diag.
//
// Convert returns a non-nil error only for a fatal condition:
// truncation mid-record, an I/O failure, or a capture header whose CPU
// count is zero (a MalformedRecord error). Everything else is logged
// to diag and decoding continues, following a "keep walking"
// rule.
func Convert(r io.Reader, size int64, w io.Writer, diag io.Writer) error {
	br := NewByteReader(r, size)

	hdr, err := decodeHeader(br)
	if err != nil {
		return err
	}

	ctx := newParseContext(hdr.CPUCount)
	if err := walkSegments(br, ctx, diag); err != nil {
		return err
	}

	if err := render(ctx, w); err != nil {
		return newDecodeError(IoError, br.Pos(), "writing trace: %v", err)
	}

	ctx.stats.WriteSummary(diag, ctx.eventFormats)
	return nil
}
