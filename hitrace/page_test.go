// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"encoding/binary"
	"testing"
)

// buildEventRecord returns a 6-byte event header plus an aligned
// payload, matching the on-disk layout decodeEventsInPage expects.
func buildEventRecord(tsOffset uint32, payload []byte) []byte {
	size := len(payload)
	aligned := (size + eventAlignMask) &^ eventAlignMask
	buf := make([]byte, eventHeaderSize+aligned)
	binary.LittleEndian.PutUint32(buf[0:4], tsOffset)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(size))
	copy(buf[eventHeaderSize:], payload)
	return buf
}

func buildPage(baseTS uint64, core uint8, records ...[]byte) []byte {
	page := make([]byte, pageSize)
	binary.LittleEndian.PutUint64(page[0:8], baseTS)
	binary.LittleEndian.PutUint64(page[8:16], uint64(pageSize-pageHeaderSize))
	page[16] = core
	pos := pageHeaderSize
	for _, rec := range records {
		copy(page[pos:], rec)
		pos += len(rec)
	}
	// A zero event_size record terminates the page; the rest of
	// the page is already zero-filled from make().
	return page
}

func TestDecodeEventsInPage(t *testing.T) {
	payload := make([]byte, 6) // 2-byte event id + 4 bytes of common fields
	binary.LittleEndian.PutUint16(payload[0:2], 314)

	rec := buildEventRecord(100, payload)
	page := buildPage(1_000_000_000, 2, rec)

	ctx := newParseContext(4)
	hdr, err := decodePageHeader(page[:pageHeaderSize])
	if err != nil {
		t.Fatalf("decodePageHeader: %v", err)
	}
	decodeEventsInPage(page[pageHeaderSize:], hdr, 2, ctx)

	if len(ctx.events) != 1 {
		t.Fatalf("got %d events, want 1", len(ctx.events))
	}
	e := ctx.events[0]
	if e.ts != 1_000_000_100 {
		t.Errorf("ts = %d, want 1000000100", e.ts)
	}
	if e.core != 2 {
		t.Errorf("core = %d, want 2", e.core)
	}
	if e.eventID != 314 {
		t.Errorf("eventID = %d, want 314", e.eventID)
	}
}

func TestDecodeEventsInPageStopsAtZeroSize(t *testing.T) {
	payload := make([]byte, 4)
	rec := buildEventRecord(0, payload)
	page := buildPage(0, 0, rec, rec) // two real records plus implicit zero padding tail

	ctx := newParseContext(1)
	hdr, _ := decodePageHeader(page[:pageHeaderSize])
	decodeEventsInPage(page[pageHeaderSize:], hdr, 0, ctx)

	if len(ctx.events) != 2 {
		t.Fatalf("got %d events, want 2", len(ctx.events))
	}
}

func TestDecodeRawTraceSegmentMultiplePages(t *testing.T) {
	payload := make([]byte, 4)
	rec := buildEventRecord(0, payload)
	page0 := buildPage(0, 0, rec)
	page1 := buildPage(500, 0, rec)

	data := append(append([]byte{}, page0...), page1...)
	ctx := newParseContext(1)
	if err := decodeRawTraceSegment(data, 3, ctx); err != nil {
		t.Fatalf("decodeRawTraceSegment: %v", err)
	}
	if len(ctx.events) != 2 {
		t.Fatalf("got %d events, want 2", len(ctx.events))
	}
	for _, e := range ctx.events {
		if e.core != 3 {
			t.Errorf("core = %d, want 3", e.core)
		}
	}
}
