// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"fmt"
	"io"
)

// Segment types. Types in [SegmentRawTraceBase, SegmentRawTraceBase+N)
// identify per-CPU raw trace pages, where N is the capture header's
// CPU count.
const (
	SegmentEventFormat  uint32 = 1
	SegmentCmdLines     uint32 = 2
	SegmentTidGroups    uint32 = 3
	SegmentRawTraceBase uint32 = 4
	SegmentHeaderPage   uint32 = 30
	SegmentPrintkFmts   uint32 = 31
	SegmentKallsyms     uint32 = 32
)

// segmentLayout describes the (type, size) prefix of every top-level
// segment record.
const segmentLayout layout = "II"
const segmentHeaderSize = 8

// parseContext is the mutable state threaded through segment walking:
// one explicit record passed by reference rather than a tree of
// objects with back-pointers.
type parseContext struct {
	cpuCount     int
	eventFormats map[uint16]*EventFormat
	cmdLines     map[uint32]string
	tidGroups    map[uint32]uint32
	events       []rawEvent
	stats        *Stats
}

func newParseContext(cpuCount int) *parseContext {
	return &parseContext{
		cpuCount:     cpuCount,
		eventFormats: make(map[uint16]*EventFormat),
		cmdLines:     make(map[uint32]string),
		tidGroups:    make(map[uint32]uint32),
		stats:        newStats(),
	}
}

// walkSegments repeatedly reads a (type, size, payload) record and
// dispatches it to the appropriate decoder, until the reader reaches a
// clean, segment-boundary EOF. A mid-record EOF is fatal
// (TruncatedCapture); any other decode error for one segment is
// logged and that segment is abandoned, and walking continues.
func walkSegments(r *ByteReader, ctx *parseContext, diag io.Writer) error {
	for r.Remaining() {
		hdrData, err := r.Read(segmentHeaderSize)
		if err == io.EOF {
			break
		}
		if err != nil {
			return newDecodeError(TruncatedCapture, r.Pos(), "reading segment header: %v", err)
		}
		vals, err := unpack(segmentLayout, hdrData, r.Pos())
		if err != nil {
			return err
		}
		segType, segSize := uint32(vals[0]), uint32(vals[1])

		payload, err := r.Read(int(segSize))
		if err != nil {
			return newDecodeError(TruncatedCapture, r.Pos(), "reading segment type=%d size=%d: %v", segType, segSize, err)
		}

		if err := dispatchSegment(segType, payload, ctx); err != nil {
			fmt.Fprintf(diag, "hitrace: %v\n", err)
		}
	}
	return nil
}

func dispatchSegment(segType uint32, payload []byte, ctx *parseContext) error {
	switch {
	case segType == SegmentEventFormat:
		formats, err := decodeEventFormats(payload)
		if err != nil {
			return err
		}
		for id, f := range formats {
			ctx.eventFormats[id] = f
		}
		return nil

	case segType == SegmentCmdLines:
		lines := decodeCmdLines(payload)
		for pid, name := range lines {
			ctx.cmdLines[pid] = name
		}
		return nil

	case segType == SegmentTidGroups:
		groups := decodeTidGroups(payload)
		for pid, tgid := range groups {
			ctx.tidGroups[pid] = tgid
		}
		return nil

	case segType == SegmentHeaderPage, segType == SegmentPrintkFmts, segType == SegmentKallsyms:
		// Ring-buffer metadata this converter doesn't need to
		// render text output: header page layout, printk format
		// strings, and kernel symbol table.
		return nil

	case segType >= SegmentRawTraceBase && segType < SegmentRawTraceBase+uint32(ctx.cpuCount):
		core := uint8(segType - SegmentRawTraceBase)
		return decodeRawTraceSegment(payload, core, ctx)

	default:
		return newDecodeError(UnknownSegment, 0, "unsupported segment type %d, size %d", segType, len(payload))
	}
}
