// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import (
	"strconv"
	"strings"
)

// FieldDesc describes one field of an event payload: where it lives
// and how to interpret the bytes there. Fields are self-describing —
// offset and size fully determine the slice, so formatters never
// guess positionally.
type FieldDesc struct {
	Type   string
	Name   string
	Offset int
	Size   int
	Signed bool
}

// EventFormat is the per-event-id descriptor decoded from the
// event-format table segment.
type EventFormat struct {
	Name     string
	ID       uint16
	Fields   []FieldDesc
	PrintFmt string
}

const (
	namePrefix     = "name: "
	idPrefix       = "ID: "
	fieldPrefix    = "field:"
	printFmtPrefix = "print fmt: "
)

// decodeEventFormats splits a UTF-8 event-format segment into
// per-event records, each closed by its "print fmt:" line, per §4.4.
func decodeEventFormats(data []byte) (map[uint16]*EventFormat, error) {
	out := make(map[uint16]*EventFormat)
	cur := &EventFormat{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(line, namePrefix):
			cur.Name = line[len(namePrefix):]
		case strings.HasPrefix(line, idPrefix):
			id, err := strconv.Atoi(line[len(idPrefix):])
			if err != nil {
				continue
			}
			cur.ID = uint16(id)
		case strings.HasPrefix(line, fieldPrefix):
			if f, ok := parseFieldLine(line); ok {
				cur.Fields = append(cur.Fields, f)
			}
		case strings.HasPrefix(line, printFmtPrefix):
			cur.PrintFmt = line[len(printFmtPrefix):]
			out[cur.ID] = cur
			cur = &EventFormat{}
		}
	}
	return out, nil
}

// parseFieldLine parses a line of the form:
//
//	field:TYPE NAME; offset:O; size:S; signed:G;
func parseFieldLine(line string) (FieldDesc, bool) {
	parts := strings.Split(line, ";")
	if len(parts) < 4 {
		return FieldDesc{}, false
	}
	typeAndName := strings.TrimSpace(parts[0])
	offsetPart := strings.TrimSpace(parts[1])
	sizePart := strings.TrimSpace(parts[2])
	signedPart := strings.TrimSpace(parts[3])

	sp := strings.LastIndex(typeAndName, " ")
	if sp < 0 {
		return FieldDesc{}, false
	}
	f := FieldDesc{
		Type: strings.TrimPrefix(typeAndName[:sp], "field:"),
		Name: typeAndName[sp+1:],
	}
	offset, err := strconv.Atoi(strings.TrimPrefix(offsetPart, "offset:"))
	if err != nil {
		return FieldDesc{}, false
	}
	size, err := strconv.Atoi(strings.TrimPrefix(sizePart, "size:"))
	if err != nil {
		return FieldDesc{}, false
	}
	f.Offset = offset
	f.Size = size
	f.Signed = strings.TrimPrefix(signedPart, "signed:") != "0"
	return f, true
}

// decodeCmdLines parses the saved-cmdline table: each non-empty line
// is "<pid> <name>"; lines without a space are skipped.
func decodeCmdLines(data []byte) map[uint32]string {
	out := make(map[uint32]string)
	for _, line := range strings.Split(string(data), "\n") {
		pos := strings.IndexByte(line, ' ')
		if pos == -1 {
			continue
		}
		pid, err := strconv.ParseUint(line[:pos], 10, 32)
		if err != nil {
			continue
		}
		out[uint32(pid)] = line[pos+1:]
	}
	return out
}

// decodeTidGroups parses the saved tid->tgid table, same line shape
// as cmdlines but with a decimal tgid value.
func decodeTidGroups(data []byte) map[uint32]uint32 {
	out := make(map[uint32]uint32)
	for _, line := range strings.Split(string(data), "\n") {
		pos := strings.IndexByte(line, ' ')
		if pos == -1 {
			continue
		}
		pid, err := strconv.ParseUint(line[:pos], 10, 32)
		if err != nil {
			continue
		}
		tgid, err := strconv.ParseUint(line[pos+1:], 10, 32)
		if err != nil {
			continue
		}
		out[uint32(pid)] = uint32(tgid)
	}
	return out
}
