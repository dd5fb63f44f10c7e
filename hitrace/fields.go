// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "encoding/binary"

// fieldView exposes one decoded event's named fields as raw byte
// slices, sliced directly from the event payload per its
// EventFormat. Field accessors always go through this table rather
// than positional offsets, since different kernel variants place the
// same logical field at different offsets (§4.7).
type fieldView struct {
	payload []byte
	byName  map[string][]byte
}

func newFieldView(format *EventFormat, payload []byte) fieldView {
	fv := fieldView{payload: payload, byName: make(map[string][]byte, len(format.Fields))}
	for _, f := range format.Fields {
		end := f.Offset + f.Size
		if f.Offset < 0 || end > len(payload) {
			continue
		}
		fv.byName[f.Name] = payload[f.Offset:end]
	}
	return fv
}

func (fv fieldView) bytes(name string) []byte {
	return fv.byName[name]
}

// str decodes a fixed-width char-array field: UTF-8 up to the first
// NUL byte.
func (fv fieldView) str(name string) string {
	return strOf(fv.byName[name])
}

func strOf(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// intf decodes a fixed-width integer field, little-endian, optionally
// sign-extended.
func (fv fieldView) intf(name string, signed bool) int64 {
	return intOf(fv.byName[name], signed)
}

func intOf(b []byte, signed bool) int64 {
	var u uint64
	for i := len(b) - 1; i >= 0; i-- {
		u = (u << 8) | uint64(b[i])
	}
	if !signed || len(b) == 0 {
		return int64(u)
	}
	bits := uint(len(b) * 8)
	if bits >= 64 {
		return int64(u)
	}
	shift := 64 - bits
	return int64(u<<shift) >> shift
}

// dynStr resolves a "dynamic string" (__data_loc) field: a 4-byte
// value whose low 16 bits are the byte offset, from the start of the
// event payload, of a NUL-terminated string appended at the event's
// tail.
func (fv fieldView) dynStr(name string) string {
	raw := fv.byName[name]
	if len(raw) < 4 {
		return ""
	}
	pos := binary.LittleEndian.Uint32(raw) & 0xffff
	if int(pos) >= len(fv.payload) {
		return ""
	}
	return strOf(fv.payload[pos:])
}
