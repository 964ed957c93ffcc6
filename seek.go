// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import (
	"math/bits"
	"strconv"
)

// Whence selects what a SeekFrom offset is relative to.
type Whence uint8

const (
	FromStart Whence = iota
	FromEnd
	FromCurrent
)

func (w Whence) String() string {
	switch w {
	case FromStart:
		return "Start"
	case FromEnd:
		return "End"
	case FromCurrent:
		return "Current"
	default:
		return "Whence(" + strconv.Itoa(int(w)) + ")"
	}
}

// SeekFrom is a seek target. Build one with Start, End or Current.
// SeekFrom values are comparable.
type SeekFrom struct {
	whence Whence
	start  uint64
	offset int64
}

// Start addresses absolute position n.
func Start(n uint64) SeekFrom { return SeekFrom{whence: FromStart, start: n} }

// End addresses offset bytes from the end of the stream.
func End(offset int64) SeekFrom { return SeekFrom{whence: FromEnd, offset: offset} }

// Current addresses offset bytes from the current position.
func Current(offset int64) SeekFrom { return SeekFrom{whence: FromCurrent, offset: offset} }

// Whence returns the addressing mode.
func (s SeekFrom) Whence() Whence { return s.whence }

// StartPos returns the absolute position of a Start target.
func (s SeekFrom) StartPos() uint64 { return s.start }

// Offset returns the relative offset of an End or Current target.
func (s SeekFrom) Offset() int64 { return s.offset }

func (s SeekFrom) String() string {
	if s.whence == FromStart {
		return "Start(" + strconv.FormatUint(s.start, 10) + ")"
	}
	return s.whence.String() + "(" + strconv.FormatInt(s.offset, 10) + ")"
}

// AddOffset returns base+offset, or false if the result would be negative
// or would not fit in a uint64.
//
// The unsigned sum carries exactly when a negative offset stays
// non-negative, so the result is valid when carry and sign agree.
func AddOffset(base uint64, offset int64) (uint64, bool) {
	p, carry := bits.Add64(base, uint64(offset), 0)
	if (carry != 0) != (offset < 0) {
		return 0, false
	}
	return p, true
}

// ResolveSeek computes the absolute position pos addresses in a stream of
// the given length whose position is current.
//
// Start targets are returned unchanged, including positions past length.
// Relative targets that land before 0 or overflow fail with an
// invalid-input error.
func ResolveSeek(pos SeekFrom, current, length uint64) (uint64, error) {
	var base uint64
	switch pos.whence {
	case FromStart:
		return pos.start, nil
	case FromEnd:
		base = length
	case FromCurrent:
		base = current
	default:
		return 0, NewError(KindInvalidInput, "invalid whence "+pos.whence.String())
	}
	p, ok := AddOffset(base, pos.offset)
	if !ok {
		return 0, errNegativeSeek
	}
	return p, nil
}

// Rewind seeks s to the start of the stream.
func Rewind(s Seeker) error {
	_, err := s.Seek(Start(0))
	return err
}

// StreamPosition returns the current position of s.
// It uses StreamPositioner when available, Seek(Current(0)) otherwise.
func StreamPosition(s Seeker) (uint64, error) {
	if sp, ok := s.(StreamPositioner); ok {
		return sp.StreamPosition()
	}
	return s.Seek(Current(0))
}

// StreamLen returns the length of s.
//
// Unless s implements StreamLener, it records the position, seeks to the
// end and, only if the two differ, seeks back. On success the position is
// restored exactly; on failure it is unspecified.
func StreamLen(s Seeker) (uint64, error) {
	if sl, ok := s.(StreamLener); ok {
		return sl.StreamLen()
	}
	old, err := StreamPosition(s)
	if err != nil {
		return 0, err
	}
	n, err := s.Seek(End(0))
	if err != nil {
		return 0, err
	}
	if old != n {
		if _, err := s.Seek(Start(old)); err != nil {
			return 0, err
		}
	}
	return n, nil
}
