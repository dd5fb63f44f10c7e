// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "encoding/binary"

const (
	eventHeaderSize = 6
	eventAlignMask  = 3
)

// eventHeaderLayout describes the 6-byte per-event header: u32
// timestamp_offset, u16 event_size.
const eventHeaderLayout layout = "LH"

// rawEvent is a decoded but unrendered event, owned exclusively by the
// event buffer (the parseContext) until rendering.
type rawEvent struct {
	ts      uint64
	core    uint8
	eventID uint16
	payload []byte
	seq     int // discovery order, for stable tie-breaking
}

// decodeEventsInPage walks the event records following a page header,
// per §4.6: each record is a 6-byte header followed by its aligned
// payload. An event_size of zero is the page's padding tail and ends
// framing for this page; the cursor never advances past pageSize -
// pageHeaderSize bytes remaining in the slice (the slice itself is
// exactly that long).
func decodeEventsInPage(data []byte, hdr pageHeader, core uint8, ctx *parseContext) {
	pos := 0
	for pos+eventHeaderSize <= len(data) {
		hdrVals, err := unpack(eventHeaderLayout, data[pos:pos+eventHeaderSize], 0)
		if err != nil {
			ctx.stats.malformedPages++
			return
		}
		tsOffset := hdrVals[0]
		size := int(hdrVals[1])
		if size == 0 {
			// Padding tail of the page; done.
			return
		}

		start := pos + eventHeaderSize
		end := start + size
		if end > len(data) {
			// Overrun: abandon the rest of this page.
			ctx.stats.malformedPages++
			return
		}
		payload := data[start:end]
		if len(payload) < 2 {
			ctx.stats.malformedPages++
			return
		}
		eventID := binary.LittleEndian.Uint16(payload[:2])

		ctx.events = append(ctx.events, rawEvent{
			ts:      hdr.timestamp + tsOffset,
			core:    core,
			eventID: eventID,
			payload: payload,
			seq:     len(ctx.events),
		})

		aligned := (size + eventAlignMask) &^ eventAlignMask
		pos = start + aligned
	}
}
