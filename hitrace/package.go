// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hitrace decodes a segment-framed kernel-tracing capture file
// (the on-device ".sys" format produced by the HiTrace tracing
// subsystem) and renders it as a textual, ftrace/systrace-compatible
// trace.
//
// The capture file is a sequence of (type, size, payload) segments: a
// 12-byte file header, an event-format table, saved cmdline and
// tid->tgid tables, and one raw-trace segment per CPU made up of
// fixed-size pages of variable-length events. Convert reads all of
// this into memory, then renders events in timestamp order using a
// formatter keyed by the event's kernel print-format string.
package hitrace
