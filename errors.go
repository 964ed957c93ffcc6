// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import "errors"

// ErrorKind is a coarse, comparable classification of an I/O failure.
//
// The core only ever constructs errors with one of these kinds and only ever
// inspects errors by asking for their kind; the message is for humans.
type ErrorKind uint8

const (
	// KindOther is reported for errors that were not produced by this package
	// and carry no kind.
	KindOther ErrorKind = iota

	// KindInterrupted means the operation was interrupted before it made any
	// progress. It is retryable and has no side effect.
	KindInterrupted

	// KindUnexpectedEOF means the source ended before the requested amount of
	// data was delivered.
	KindUnexpectedEOF

	// KindWriteZero means a sink accepted zero bytes while data remained.
	KindWriteZero

	// KindInvalidInput means a parameter was malformed, e.g. a seek before
	// byte 0.
	KindInvalidInput

	// KindInvalidData means the data itself was malformed, e.g. text that is
	// not valid UTF-8.
	KindInvalidData

	// KindWouldBlock means no progress is possible without waiting.
	KindWouldBlock

	// KindUncategorized is the catch-all for failures not attributable to the
	// underlying source or sink.
	KindUncategorized
)

func (k ErrorKind) String() string {
	switch k {
	case KindInterrupted:
		return "interrupted"
	case KindUnexpectedEOF:
		return "unexpected end of file"
	case KindWriteZero:
		return "write zero"
	case KindInvalidInput:
		return "invalid input parameter"
	case KindInvalidData:
		return "invalid data"
	case KindWouldBlock:
		return "operation would block"
	case KindUncategorized:
		return "uncategorized error"
	default:
		return "other error"
	}
}

// Error is the error value produced by this package.
//
// Under errors.Is, every *Error matches the per-kind sentinel of its kind
// (ErrInterrupted, ErrWriteZero, ...). Other *Error values match only
// themselves.
type Error struct {
	kind     ErrorKind
	msg      string
	cause    error
	sentinel bool
}

// NewError returns an error of the given kind with a descriptive message.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// WrapError returns an error of the given kind that wraps cause.
// Callers outside the package use it to tag collaborator errors (OS errors,
// network errors) with a kind the core understands.
func WrapError(kind ErrorKind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

// Kind returns the classification of e.
func (e *Error) Kind() ErrorKind { return e.kind }

func (e *Error) Error() string {
	switch {
	case e.cause != nil && e.msg != "":
		return "io: " + e.msg + ": " + e.cause.Error()
	case e.cause != nil:
		return "io: " + e.cause.Error()
	case e.msg != "":
		return "io: " + e.msg
	default:
		return "io: " + e.kind.String()
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.sentinel && t.kind == e.kind
}

func newSentinel(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg, sentinel: true}
}

// KindOf returns the kind carried by err, looking through wrappers.
// It returns KindOther for nil and for errors with no kind.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindOther
}

// Sentinels, one per kind. Compare with errors.Is, never with ==.
var (
	// ErrInterrupted matches every interrupted error.
	ErrInterrupted = newSentinel(KindInterrupted, "operation interrupted")

	// ErrUnexpectedEOF matches every unexpected-end-of-data error.
	ErrUnexpectedEOF = newSentinel(KindUnexpectedEOF, "unexpected end of file")

	// ErrWriteZero matches every write-zero error.
	ErrWriteZero = newSentinel(KindWriteZero, "write zero")

	// ErrInvalidInput matches every invalid-input error.
	ErrInvalidInput = newSentinel(KindInvalidInput, "invalid input")

	// ErrInvalidData matches every invalid-data error.
	ErrInvalidData = newSentinel(KindInvalidData, "invalid data")

	// ErrWouldBlock means "no further progress without waiting".
	// Linux analogy: EAGAIN/EWOULDBLOCK.
	// Next step: wait for readiness, then retry.
	ErrWouldBlock = newSentinel(KindWouldBlock, "would block")

	// ErrUncategorized matches every uncategorized error.
	ErrUncategorized = newSentinel(KindUncategorized, "uncategorized")
)

var (
	errFillWholeBuffer  = NewError(KindUnexpectedEOF, "failed to fill whole buffer")
	errWriteWholeBuffer = NewError(KindWriteZero, "failed to write whole buffer")
	errNegativeSeek     = NewError(KindInvalidInput, "invalid seek to a negative or overflowing position")
	errFormatter        = NewError(KindUncategorized, "formatter error")
	errNotUTF8          = NewError(KindInvalidData, "stream did not contain valid UTF-8")
)

// ErrNoSeeker is returned by the Copy family when the sink would block after a
// partial write, the source is not seekable, and the unwritten bytes could
// therefore not be handed back to the source.
var ErrNoSeeker = NewError(KindUncategorized, "partial write on a non-seekable source")
