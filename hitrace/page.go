// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

const (
	pageSize       = 4096
	pageHeaderSize = 17
)

// pageHeaderLayout describes the 17-byte per-page header: u64
// timestamp, u64 length, u8 core_id.
const pageHeaderLayout layout = "QQB"

// pageHeader is the base timestamp and informational length for one
// 4096-byte raw-trace page.
type pageHeader struct {
	timestamp uint64
	length    uint64
	coreID    uint8
}

// decodeRawTraceSegment splits a raw-trace segment's payload into
// fixed 4096-byte pages and frames the events in each. The
// segment's declared core (from its segment type) takes precedence
// over the page header's core_id field for bookkeeping purposes; both
// should agree in a well-formed capture.
func decodeRawTraceSegment(data []byte, core uint8, ctx *parseContext) error {
	for off := 0; off+pageSize <= len(data); off += pageSize {
		page := data[off : off+pageSize]
		hdr, err := decodePageHeader(page[:pageHeaderSize])
		if err != nil {
			// A malformed page header abandons only this
			// page; keep walking the segment.
			ctx.stats.malformedPages++
			continue
		}
		decodeEventsInPage(page[pageHeaderSize:], hdr, core, ctx)
	}
	return nil
}

func decodePageHeader(data []byte) (pageHeader, error) {
	vals, err := unpack(pageHeaderLayout, data, 0)
	if err != nil {
		return pageHeader{}, err
	}
	return pageHeader{
		timestamp: vals[0],
		length:    vals[1],
		coreID:    uint8(vals[2]),
	}, nil
}
