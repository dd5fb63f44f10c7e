// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"fmt"
	"io"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Stats accumulates the post-run diagnostics described in §4.7
// "Statistics": per-event-id counts and byte totals, and the sets of
// events dropped for an unknown format or an unknown id.
type Stats struct {
	eventCount map[uint16]int
	eventBytes map[uint16]int64

	missingFormat  map[string]int // event name -> count, print_fmt unknown
	missingEventID map[uint16]int // event id unknown entirely
	malformedPages int

	// gapsByCore holds, per core, the inter-event timestamp deltas in
	// the timestamp-sorted order render records events in, feeding the
	// percentile summary below.
	gapsByCore map[uint8][]float64
	lastTS     map[uint8]uint64
}

func newStats() *Stats {
	return &Stats{
		eventCount:     make(map[uint16]int),
		eventBytes:     make(map[uint16]int64),
		missingFormat:  make(map[string]int),
		missingEventID: make(map[uint16]int),
		gapsByCore:     make(map[uint8][]float64),
		lastTS:         make(map[uint8]uint64),
	}
}

func (s *Stats) recordEvent(e rawEvent) {
	s.eventCount[e.eventID]++
	s.eventBytes[e.eventID] += int64(len(e.payload))
	if last, ok := s.lastTS[e.core]; ok && e.ts >= last {
		s.gapsByCore[e.core] = append(s.gapsByCore[e.core], float64(e.ts-last))
	}
	s.lastTS[e.core] = e.ts
}

func (s *Stats) recordMissingFormat(name string) {
	s.missingFormat[name]++
}

func (s *Stats) recordMissingEventID(id uint16) {
	s.missingEventID[id]++
}

// WriteSummary writes the end-of-run diagnostic summary to w, matching
// the counts/sets the error model (§7) requires be surfaced: total
// events and bytes per id, and the missing-format/missing-id sets.
//
// The inter-event-gap percentiles are the one genuinely domain-shaped
// use of go-moremath/stats in this converter: a rough per-CPU
// scheduling-latency summary, the same statistic cmd/memlat computes
// over perf.data samples, computed here over this file's own
// timestamps instead of pulling in a visualization stack to do it.
func (s *Stats) WriteSummary(w io.Writer, formats map[uint16]*EventFormat) {
	var totalEvents int
	var totalBytes int64
	ids := make([]int, 0, len(s.eventCount))
	for id := range s.eventCount {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	fmt.Fprintf(w, "hitrace: decoded %d event kinds\n", len(ids))
	for _, id := range ids {
		id16 := uint16(id)
		name := "?"
		if f := formats[id16]; f != nil {
			name = f.Name
		}
		fmt.Fprintf(w, "  id=%-5d %-28s count=%-8d bytes=%d\n", id16, name, s.eventCount[id16], s.eventBytes[id16])
		totalEvents += s.eventCount[id16]
		totalBytes += s.eventBytes[id16]
	}
	fmt.Fprintf(w, "hitrace: %d events, %d bytes total\n", totalEvents, totalBytes)

	if s.malformedPages > 0 {
		fmt.Fprintf(w, "hitrace: %d malformed page(s) abandoned\n", s.malformedPages)
	}

	if len(s.missingFormat) > 0 {
		fmt.Fprintf(w, "hitrace: %d event name(s) with no known print format:\n", len(s.missingFormat))
		names := make([]string, 0, len(s.missingFormat))
		for n := range s.missingFormat {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(w, "  %s (x%d)\n", n, s.missingFormat[n])
		}
	}

	if len(s.missingEventID) > 0 {
		fmt.Fprintf(w, "hitrace: %d unknown event id(s):\n", len(s.missingEventID))
		idList := make([]int, 0, len(s.missingEventID))
		for id := range s.missingEventID {
			idList = append(idList, int(id))
		}
		sort.Ints(idList)
		for _, id := range idList {
			fmt.Fprintf(w, "  id=%d (x%d)\n", id, s.missingEventID[uint16(id)])
		}
	}

	cores := make([]int, 0, len(s.gapsByCore))
	for c := range s.gapsByCore {
		cores = append(cores, int(c))
	}
	sort.Ints(cores)
	for _, c := range cores {
		gaps := s.gapsByCore[uint8(c)]
		if len(gaps) == 0 {
			continue
		}
		sample := stats.Sample{Xs: gaps}
		sample.Sort()
		fmt.Fprintf(w, "  cpu%d: inter-event gap median=%.0fns p90=%.0fns (n=%d)\n",
			c, sample.Percentile(0.5), sample.Percentile(0.9), len(gaps))
	}
}
