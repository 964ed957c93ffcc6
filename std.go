// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import (
	"errors"
	"io"
	"math"
	"os"
)

// maxEmptyReads bounds how many (0, nil) results from a standard io.Reader
// are retried before giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// FromStd adapts a standard io.Reader to Reader.
//
// io.EOF becomes end-of-data. Data returned together with an error is
// delivered first and the error is reported by the next call. A (0, nil)
// result, which io treats as "no progress", is retried a bounded number of
// times. Standard sentinels are mapped onto kinds by StdError.
func FromStd(r io.Reader) Reader { return &stdReader{r: r} }

type stdReader struct {
	r       io.Reader
	pending error
}

func (s *stdReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := s.pending; err != nil {
		s.pending = nil
		if err == io.EOF {
			return 0, nil
		}
		return 0, StdError(err)
	}
	for range maxEmptyReads {
		n, err := s.r.Read(p)
		if n > 0 {
			s.pending = err
			return n, nil
		}
		if err == io.EOF {
			return 0, nil
		}
		if err != nil {
			return 0, StdError(err)
		}
	}
	return 0, WrapError(KindOther, io.ErrNoProgress)
}

// ToStd adapts a Reader to a standard io.Reader: end-of-data becomes io.EOF
// and interrupted errors are retried.
func ToStd(r Reader) io.Reader { return toStdReader{r: r} }

type toStdReader struct{ r Reader }

func (t toStdReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := t.r.Read(p)
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			return n, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// FromStdWriter adapts a standard io.Writer to Writer.
//
// A short write with an error reports the accepted prefix and defers the
// error to the next call. Flush calls the writer's own Flush() error method
// when it has one (bufio.Writer does) and is a no-op otherwise.
func FromStdWriter(w io.Writer) Writer { return &stdWriter{w: w} }

type stdWriter struct {
	w       io.Writer
	pending error
}

func (s *stdWriter) Write(p []byte) (int, error) {
	if err := s.pending; err != nil {
		s.pending = nil
		return 0, StdError(err)
	}
	n, err := s.w.Write(p)
	if err != nil {
		if n > 0 {
			s.pending = err
			return n, nil
		}
		return 0, StdError(err)
	}
	return n, nil
}

func (s *stdWriter) Flush() error {
	if err := s.pending; err != nil {
		s.pending = nil
		return StdError(err)
	}
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return StdError(f.Flush())
	}
	return nil
}

// ToStdWriter adapts a Writer to a standard io.Writer. Each Write has
// WriteAll semantics, as io.Writer requires an error for short writes.
func ToStdWriter(w Writer) io.Writer { return toStdWriter{w: w} }

type toStdWriter struct{ w Writer }

func (t toStdWriter) Write(p []byte) (int, error) {
	return writeAll(t.w, p, OpWrite, nil)
}

// FromStdSeeker adapts a standard io.Seeker to Seeker. Start positions
// beyond math.MaxInt64 cannot be expressed and fail with an invalid-input
// error.
func FromStdSeeker(s io.Seeker) Seeker { return stdSeeker{s: s} }

type stdSeeker struct{ s io.Seeker }

func (s stdSeeker) Seek(pos SeekFrom) (uint64, error) {
	var (
		off    int64
		whence int
	)
	switch pos.Whence() {
	case FromStart:
		if pos.StartPos() > math.MaxInt64 {
			return 0, errNegativeSeek
		}
		off, whence = int64(pos.StartPos()), io.SeekStart
	case FromEnd:
		off, whence = pos.Offset(), io.SeekEnd
	default:
		off, whence = pos.Offset(), io.SeekCurrent
	}
	n, err := s.s.Seek(off, whence)
	if err != nil {
		return 0, StdError(err)
	}
	if n < 0 {
		return 0, errNegativeSeek
	}
	return uint64(n), nil
}

// StdError tags standard library sentinels with the matching kind:
// io.ErrUnexpectedEOF, io.ErrShortWrite, os.ErrDeadlineExceeded (would
// block) and os.ErrInvalid. Other errors, and errors that already carry a
// kind, are returned unchanged.
func StdError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return WrapError(KindUnexpectedEOF, err)
	case errors.Is(err, io.ErrShortWrite):
		return WrapError(KindWriteZero, err)
	case errors.Is(err, os.ErrDeadlineExceeded):
		return WrapError(KindWouldBlock, err)
	case errors.Is(err, os.ErrInvalid):
		return WrapError(KindInvalidInput, err)
	}
	return err
}
