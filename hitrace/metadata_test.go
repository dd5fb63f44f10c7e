// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "testing"

const sampleEventFormatSegment = `name: sched_switch
ID: 314
format:
	field:unsigned short common_type;	offset:0;	size:2;	signed:0;
	field:char prev_comm[16];	offset:8;	size:16;	signed:0;
	field:pid_t prev_pid;	offset:24;	size:4;	signed:1;
	field:int prev_prio;	offset:28;	size:4;	signed:1;
	field:long prev_state;	offset:32;	size:8;	signed:1;
	field:char next_comm[16];	offset:40;	size:16;	signed:0;
	field:pid_t next_pid;	offset:56;	size:4;	signed:1;
	field:int next_prio;	offset:60;	size:4;	signed:1;
	field:unsigned int expeller_type;	offset:64;	size:4;	signed:0;

print fmt: "prev_comm=%s prev_pid=%d prev_prio=%d prev_state=%s%s ==> next_comm=%s next_pid=%d next_prio=%d expeller_type=%u", REC->prev_comm, REC->prev_pid, REC->prev_prio, (REC->prev_state & ((((0x0000 | 0x0001 | 0x0002 | 0x0004 | 0x0008 | 0x0010 | 0x0020 | 0x0040) + 1) << 1) - 1)) ? __print_flags(REC->prev_state & ((((0x0000 | 0x0001 | 0x0002 | 0x0004 | 0x0008 | 0x0010 | 0x0020 | 0x0040) + 1) << 1) - 1), "|", { 0x0001, "S" }, { 0x0002, "D" }, { 0x0004, "T" }, { 0x0008, "t" }, { 0x0010, "X" }, { 0x0020, "Z" }, { 0x0040, "P" }, { 0x0080, "I" }) : "R", REC->prev_state & (((0x0000 | 0x0001 | 0x0002 | 0x0004 | 0x0008 | 0x0010 | 0x0020 | 0x0040) + 1) << 1) ? "+" : "", REC->next_comm, REC->next_pid, REC->next_prio, REC->expeller_type

name: sched_wakeup
ID: 315
format:
	field:char comm[16];	offset:8;	size:16;	signed:0;
	field:pid_t pid;	offset:24;	size:4;	signed:1;
	field:int prio;	offset:28;	size:4;	signed:1;
	field:int success;	offset:32;	size:4;	signed:1;
	field:int target_cpu;	offset:36;	size:4;	signed:1;

print fmt: "comm=%s pid=%d prio=%d target_cpu=%03d", REC->comm, REC->pid, REC->prio, REC->target_cpu
`

func TestDecodeEventFormats(t *testing.T) {
	formats, err := decodeEventFormats([]byte(sampleEventFormatSegment))
	if err != nil {
		t.Fatalf("decodeEventFormats: %v", err)
	}
	if len(formats) != 2 {
		t.Fatalf("got %d formats, want 2", len(formats))
	}

	sw, ok := formats[314]
	if !ok {
		t.Fatal("missing event id 314")
	}
	if sw.Name != "sched_switch" {
		t.Errorf("Name = %q, want sched_switch", sw.Name)
	}
	if len(sw.Fields) != 9 {
		t.Errorf("got %d fields, want 9", len(sw.Fields))
	}
	var prevState *FieldDesc
	for i := range sw.Fields {
		if sw.Fields[i].Name == "prev_state" {
			prevState = &sw.Fields[i]
		}
	}
	if prevState == nil {
		t.Fatal("missing prev_state field")
	}
	if prevState.Offset != 32 || prevState.Size != 8 || !prevState.Signed {
		t.Errorf("prev_state = %+v", prevState)
	}

	wakeup, ok := formats[315]
	if !ok || wakeup.Name != "sched_wakeup" {
		t.Errorf("missing or wrong sched_wakeup format: %+v", wakeup)
	}
}

func TestParseFieldLine(t *testing.T) {
	f, ok := parseFieldLine("\tfield:char rwbs[8];\toffset:24;\tsize:8;\tsigned:0;")
	if !ok {
		t.Fatal("parseFieldLine failed")
	}
	if f.Type != "char" || f.Name != "rwbs[8]" || f.Offset != 24 || f.Size != 8 || f.Signed {
		t.Errorf("got %+v", f)
	}
}

func TestDecodeCmdLines(t *testing.T) {
	cmds := decodeCmdLines([]byte("42 kworker/0:1\n1 init\n\n7 bad line with space ignored? no wait\n"))
	if cmds[42] != "kworker/0:1" {
		t.Errorf("cmds[42] = %q", cmds[42])
	}
	if cmds[1] != "init" {
		t.Errorf("cmds[1] = %q", cmds[1])
	}
}

func TestDecodeTidGroups(t *testing.T) {
	groups := decodeTidGroups([]byte("42 2\n1 1\n"))
	if groups[42] != 2 {
		t.Errorf("groups[42] = %d, want 2", groups[42])
	}
	if groups[1] != 1 {
		t.Errorf("groups[1] = %d, want 1", groups[1])
	}
}
