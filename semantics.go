// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import (
	"errors"
)

// Outcome classifies an operation result for control flow.
//
// OutcomeOK:           success.
// OutcomeInterrupted:  nothing happened; retry immediately.
// OutcomeWouldBlock:   nothing happened; retry after readiness.
// OutcomeFailure:      any other error.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeInterrupted
	OutcomeWouldBlock
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeInterrupted:
		return "Interrupted"
	case OutcomeWouldBlock:
		return "WouldBlock"
	default:
		return "Failure"
	}
}

// IsInterrupted reports whether err is an interrupted error (via errors.Is).
func IsInterrupted(err error) bool { return errors.Is(err, ErrInterrupted) }

// IsWouldBlock reports whether err carries the would-block semantic.
func IsWouldBlock(err error) bool { return errors.Is(err, ErrWouldBlock) }

// IsUnexpectedEOF reports whether err is an unexpected-end-of-data error.
func IsUnexpectedEOF(err error) bool { return errors.Is(err, ErrUnexpectedEOF) }

// IsWriteZero reports whether err is a write-zero error.
func IsWriteZero(err error) bool { return errors.Is(err, ErrWriteZero) }

// IsInvalidInput reports whether err is an invalid-input error.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsRetryable reports whether the failed call had no side effect and may be
// issued again: interrupted or would-block.
func IsRetryable(err error) bool { return IsInterrupted(err) || IsWouldBlock(err) }

// Classify maps err to an Outcome. Use when a compact switch is preferred.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if IsInterrupted(err) {
		return OutcomeInterrupted
	}
	if IsWouldBlock(err) {
		return OutcomeWouldBlock
	}
	return OutcomeFailure
}
