// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// traceHeader is the fixed ftrace-compatible banner written before any
// events, identifying the column layout (§6 "Output format").
const traceHeader = `# tracer: nop
#
# entries-in-buffer/entries-written: %d/%d   #P:%d
#
#                                      _-----=> irqs-off
#                                     / _----=> need-resched
#                                    | / _---=> hardirq/softirq
#                                    || / _--=> preempt-depth
#                                    ||| /     delay
#           TASK-PID    TGID   CPU#  ||||    TIMESTAMP  FUNCTION
#              | |        |      |   ||||       |         |
`

const (
	commWidth = 16
	pidWidth  = 6
	tgidWidth = 5
	cpuWidth  = 3
	secsWidth = 5
)

// render sorts all buffered events by timestamp (stable, so equal
// timestamps keep discovery order per §4.7 "Ordering") and writes the
// rendered trace to w.
func render(ctx *parseContext, w io.Writer) error {
	sort.SliceStable(ctx.events, func(i, j int) bool {
		return ctx.events[i].ts < ctx.events[j].ts
	})

	if _, err := fmt.Fprintf(w, traceHeader, len(ctx.events), len(ctx.events), ctx.cpuCount); err != nil {
		return err
	}

	for _, e := range ctx.events {
		ctx.stats.recordEvent(e)

		format := ctx.eventFormats[e.eventID]
		if format == nil {
			ctx.stats.recordMissingEventID(e.eventID)
			continue
		}
		line, ok := renderEvent(e, format, ctx)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderEvent builds one output line per §4.7. It returns ok=false
// when the event's print_fmt has no registered formatter, in which
// case the event is counted in the missing-format set and the line is
// omitted.
func renderEvent(e rawEvent, format *EventFormat, ctx *parseContext) (string, bool) {
	fv := newFieldView(format, e.payload)

	formatter, ok := formatterTable[format.PrintFmt]
	if !ok {
		ctx.stats.recordMissingFormat(format.Name)
		return "", false
	}

	pid := uint32(fv.intf("common_pid", false))
	flags := uint32(fv.intf("common_flags", false))
	preempt := uint32(fv.intf("common_preempt_count", false))

	var b strings.Builder
	b.WriteString(taskColumn(pid, ctx.cmdLines))
	b.WriteByte('-')
	b.WriteString(leftJustify(fmt.Sprintf("%d", pid), pidWidth))
	b.WriteString(tgidColumn(pid, ctx.tidGroups))
	b.WriteByte(' ')
	b.WriteByte('[')
	b.WriteString(zeroPad(fmt.Sprintf("%d", e.core), cpuWidth))
	b.WriteString("] ")
	b.WriteString(flagsColumn(flags, preempt))
	b.WriteByte(' ')
	b.WriteString(timestampColumn(e.ts))
	b.WriteString(": ")
	b.WriteString(format.Name)
	b.WriteString(": ")
	b.WriteString(formatter(e.payload, fv))

	return b.String(), true
}

func leftJustify(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func rightJustify(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

func zeroPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// taskColumn is the right-justified, width-16 task name: "<idle>" for
// pid 0, the cmdline for a known pid, or "<...>" otherwise.
func taskColumn(pid uint32, cmdLines map[uint32]string) string {
	var name string
	switch {
	case pid == 0:
		name = "<idle>"
	case cmdLines[pid] != "":
		name = cmdLines[pid]
	default:
		name = "<...>"
	}
	return rightJustify(name, commWidth)
}

// tgidColumn is "(" + tgid.rjust(5) + ")" if known, else "(-----)".
func tgidColumn(pid uint32, tidGroups map[uint32]uint32) string {
	tgid, ok := tidGroups[pid]
	if !ok {
		return "(-----)"
	}
	return "(" + rightJustify(fmt.Sprintf("%d", tgid), tgidWidth) + ")"
}

const (
	flagIrqsOff        = 0x01
	flagIrqsNoSupport  = 0x02
	flagNeedResched    = 0x04
	flagHardIRQ        = 0x08
	flagSoftIRQ        = 0x10
	flagPreemptResched = 0x20
	flagNMI            = 0x40
)

// flagsColumn renders the 4-char flags field, per §4.7; the caller
// writes the space that follows it. All-zero flags and preempt count
// render as the literal "....".
func flagsColumn(flags, preempt uint32) string {
	if flags|preempt == 0 {
		return "...."
	}

	var b strings.Builder

	switch {
	case flags&flagIrqsOff != 0:
		b.WriteByte('d')
	case flags&flagIrqsNoSupport != 0:
		b.WriteByte('X')
	default:
		b.WriteByte('.')
	}

	needResched := flags&flagNeedResched != 0
	preemptResched := flags&flagPreemptResched != 0
	switch {
	case needResched && preemptResched:
		b.WriteByte('N')
	case needResched:
		b.WriteByte('n')
	case preemptResched:
		b.WriteByte('p')
	default:
		b.WriteByte('.')
	}

	nmi := flags&flagNMI != 0
	hard := flags&flagHardIRQ != 0
	soft := flags&flagSoftIRQ != 0
	switch {
	case nmi && hard:
		b.WriteByte('Z')
	case nmi:
		b.WriteByte('z')
	case hard && soft:
		b.WriteByte('H')
	case hard:
		b.WriteByte('h')
	case soft:
		b.WriteByte('s')
	default:
		b.WriteByte('.')
	}

	if preempt != 0 {
		b.WriteByte("0123456789abcdef"[preempt&0x0F])
	} else {
		b.WriteByte('.')
	}

	return b.String()
}

// timestampColumn rounds an absolute ns timestamp to microseconds,
// half-up at 500ns, and renders "sssss.uuuuuu" with the seconds
// right-justified to width 5 and the microseconds zero-padded to
// width 6.
func timestampColumn(ns uint64) string {
	us := ns / 1000
	if ns%1000 >= 500 {
		us++
	}
	secs := us / 1_000_000
	micros := us % 1_000_000
	return rightJustify(fmt.Sprintf("%d", secs), secsWidth) + "." + zeroPad(fmt.Sprintf("%d", micros), 6)
}
