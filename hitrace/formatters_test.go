// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"encoding/binary"
	"testing"
)

func buildField(buf []byte, f FieldDesc, value int64) {
	u := uint64(value)
	for i := 0; i < f.Size; i++ {
		buf[f.Offset+i] = byte(u >> (8 * i))
	}
}

func buildStrField(buf []byte, f FieldDesc, s string) {
	copy(buf[f.Offset:f.Offset+f.Size], s)
}

func schedSwitchFormat() *EventFormat {
	return &EventFormat{
		Name:     "sched_switch",
		ID:       314,
		PrintFmt: printFmtSchedSwitch,
		Fields: []FieldDesc{
			{Name: "common_pid", Offset: 4, Size: 4, Signed: true},
			{Name: "prev_comm[16]", Offset: 8, Size: 16},
			{Name: "prev_pid", Offset: 24, Size: 4, Signed: true},
			{Name: "prev_prio", Offset: 28, Size: 4, Signed: true},
			{Name: "prev_state", Offset: 32, Size: 8, Signed: true},
			{Name: "next_comm[16]", Offset: 40, Size: 16},
			{Name: "next_pid", Offset: 56, Size: 4, Signed: true},
			{Name: "next_prio", Offset: 60, Size: 4, Signed: true},
			{Name: "expeller_type", Offset: 64, Size: 4},
		},
	}
}

func buildSchedSwitchPayload(prevState int64) []byte {
	format := schedSwitchFormat()
	payload := make([]byte, 68)
	for _, f := range format.Fields {
		switch f.Name {
		case "prev_comm[16]":
			buildStrField(payload, f, "bash")
		case "prev_pid":
			buildField(payload, f, 1234)
		case "prev_prio":
			buildField(payload, f, 120)
		case "prev_state":
			buildField(payload, f, prevState)
		case "next_comm[16]":
			buildStrField(payload, f, "kworker/0:1")
		case "next_pid":
			buildField(payload, f, 42)
		case "next_prio":
			buildField(payload, f, 120)
		case "expeller_type":
			buildField(payload, f, 0)
		}
	}
	return payload
}

func TestFormatSchedSwitchE1(t *testing.T) {
	format := schedSwitchFormat()
	cases := []struct {
		prevState int64
		want      string
	}{
		{0x2, "prev_comm=bash prev_pid=1234 prev_prio=120 prev_state=D ==> next_comm=kworker/0:1 next_pid=42 next_prio=120 expeller_type=0"},
		{0x102, "prev_comm=bash prev_pid=1234 prev_prio=120 prev_state=D+ ==> next_comm=kworker/0:1 next_pid=42 next_prio=120 expeller_type=0"},
		{0x0, "prev_comm=bash prev_pid=1234 prev_prio=120 prev_state=R ==> next_comm=kworker/0:1 next_pid=42 next_prio=120 expeller_type=0"},
	}
	for _, c := range cases {
		payload := buildSchedSwitchPayload(c.prevState)
		fv := newFieldView(format, payload)
		got := formatSchedSwitch(payload, fv)
		if got != c.want {
			t.Errorf("prevState=%#x: got %q, want %q", c.prevState, got, c.want)
		}
	}
}

func TestFormatBlockRqCompleteE2(t *testing.T) {
	format := &EventFormat{
		Fields: []FieldDesc{
			{Name: "dev", Offset: 0, Size: 4},
			{Name: "sector", Offset: 4, Size: 8},
			{Name: "nr_sector", Offset: 12, Size: 4},
			{Name: "rwbs[8]", Offset: 16, Size: 8},
			{Name: "cmd", Offset: 24, Size: 4}, // __data_loc
			{Name: "error", Offset: 28, Size: 4, Signed: true},
		},
	}
	payload := make([]byte, 32)
	dev := int64((8 << 20) | 17)
	buildField(payload, format.Fields[0], dev)
	buildField(payload, format.Fields[1], 2048)
	buildField(payload, format.Fields[2], 8)
	buildStrField(payload, format.Fields[3], "WS")
	// cmd: __data_loc pointing past the fixed fields, at an empty string.
	binary.LittleEndian.PutUint32(payload[24:28], uint32(len(payload)))
	buildField(payload, format.Fields[5], 0)
	payload = append(payload, 0) // NUL-terminated empty string tail

	fv := newFieldView(format, payload)
	got := formatBlockRqComplete(payload, fv)
	want := "8,17 WS () 2048 + 8 [0]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatTracingMarkWrite(t *testing.T) {
	makeFV := func(body string) (*EventFormat, []byte, fieldView) {
		format := &EventFormat{Fields: []FieldDesc{{Name: "buffer", Offset: 0, Size: 4}}}
		payload := make([]byte, 4, 4+len(body)+1)
		binary.LittleEndian.PutUint32(payload[0:4], 4)
		payload = append(payload, []byte(body)...)
		payload = append(payload, 0)
		return format, payload, newFieldView(format, payload)
	}

	cases := []struct {
		body string
		want string
	}{
		{"E|1234|", "E|1234"},
		{"S|1234 work", "S|1234|work"},
		{"plain text", "plain text"},
	}
	for _, c := range cases {
		_, payload, fv := makeFV(c.body)
		got := formatTracingMarkWrite(payload, fv)
		if got != c.want {
			t.Errorf("body=%q: got %q, want %q", c.body, got, c.want)
		}
	}
}

func TestRenderEventMissingFormatter(t *testing.T) {
	format := &EventFormat{Name: "totally_unknown_event", PrintFmt: "not in the table", Fields: nil}
	ctx := newParseContext(1)
	ctx.eventFormats[1] = format

	e := rawEvent{ts: 1, core: 0, eventID: 1, payload: make([]byte, 16)}
	_, ok := renderEvent(e, format, ctx)
	if ok {
		t.Fatal("expected ok=false for a format with no registered formatter")
	}
	if ctx.stats.missingFormat["totally_unknown_event"] != 1 {
		t.Errorf("missingFormat count = %d, want 1", ctx.stats.missingFormat["totally_unknown_event"])
	}

	// A second occurrence must not create a second entry.
	renderEvent(e, format, ctx)
	if ctx.stats.missingFormat["totally_unknown_event"] != 2 {
		t.Errorf("missingFormat count = %d, want 2", ctx.stats.missingFormat["totally_unknown_event"])
	}
	if len(ctx.stats.missingFormat) != 1 {
		t.Errorf("got %d distinct missing names, want 1", len(ctx.stats.missingFormat))
	}
}
