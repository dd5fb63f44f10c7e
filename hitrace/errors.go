// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrace

import "fmt"

// ErrorKind classifies a decode error per the error model: some kinds
// are fatal and abort the whole run, others are local to one segment,
// page, or event and simply cause that unit to be skipped.
type ErrorKind int

const (
	// IoError is an open/read/write failure. Fatal.
	IoError ErrorKind = iota
	// TruncatedCapture is an EOF in the middle of a fixed-size
	// record. Fatal.
	TruncatedCapture
	// MalformedRecord is a size mismatch when unpacking a fixed
	// layout. The containing segment is abandoned.
	MalformedRecord
	// MalformedPage is a bad event header inside a page. The
	// current page is abandoned.
	MalformedPage
	// UnknownSegment is an unsupported segment type. The segment
	// is skipped.
	UnknownSegment
	// UnknownPrintFormat is an event whose print_fmt has no
	// formatter. The event is counted and omitted.
	UnknownPrintFormat
	// UnknownEventId is an event id absent from the event-format
	// table. The event is counted and omitted.
	UnknownEventId
)

func (k ErrorKind) String() string {
	switch k {
	case IoError:
		return "IoError"
	case TruncatedCapture:
		return "TruncatedCapture"
	case MalformedRecord:
		return "MalformedRecord"
	case MalformedPage:
		return "MalformedPage"
	case UnknownSegment:
		return "UnknownSegment"
	case UnknownPrintFormat:
		return "UnknownPrintFormat"
	case UnknownEventId:
		return "UnknownEventId"
	default:
		return "UnknownErrorKind"
	}
}

// DecodeError is returned for any error encountered while decoding a
// capture file. Kind distinguishes fatal errors (IoError,
// TruncatedCapture) from the local, non-fatal ones, which callers
// within this package log and recover from rather than propagate. The
// exception is a MalformedRecord from decoding the capture header,
// which Convert returns.
type DecodeError struct {
	Kind   ErrorKind
	Offset int64
	Msg    string
}

func (e *DecodeError) Error() string {
	if e.Offset != 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (k ErrorKind) fatal() bool {
	return k == IoError || k == TruncatedCapture
}

func newDecodeError(kind ErrorKind, offset int64, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
