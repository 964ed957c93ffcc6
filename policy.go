// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import "runtime"

// Op identifies which step of a multi-step helper hit ErrWouldBlock.
//
// It is coarse on purpose: enough for a policy to tell reader-side from
// writer-side backpressure.
type Op uint8

const (
	OpRead Op = iota
	OpWrite
	OpFill
	OpFlush

	OpCopyRead
	OpCopyWrite
)

func (op Op) String() string {
	switch op {
	case OpRead:
		return "Read"
	case OpWrite:
		return "Write"
	case OpFill:
		return "Fill"
	case OpFlush:
		return "Flush"
	case OpCopyRead:
		return "CopyRead"
	case OpCopyWrite:
		return "CopyWrite"
	default:
		return "Op(unknown)"
	}
}

// isWriteSide reports whether op is a sink-side step.
func (op Op) isWriteSide() bool {
	switch op {
	case OpWrite, OpFlush, OpCopyWrite:
		return true
	default:
		return false
	}
}

// PolicyAction tells a helper whether to return to the caller or retry.
type PolicyAction uint8

const (
	// PolicyReturn means: return ErrWouldBlock to the caller now.
	PolicyReturn PolicyAction = iota

	// PolicyRetry means: call Yield, then try the same step again.
	PolicyRetry
)

// SemanticPolicy decides how the *Policy helpers react to ErrWouldBlock.
//
// Interrupted errors never reach a policy; they are always retried.
//
// Contract expectations:
//   - OnWouldBlock is only called for would-block errors.
//   - If PolicyRetry is returned, the helper calls Yield(op) and retries.
//   - If Yield does not actually wait for readiness, the helper may spin.
type SemanticPolicy interface {
	Yield(op Op)
	OnWouldBlock(op Op) PolicyAction
}

// PolicyFunc builds a policy from optional functions.
//
// Defaults when fields are nil:
//   - YieldFunc: runtime.Gosched()
//   - WouldBlockFunc: PolicyReturn
type PolicyFunc struct {
	YieldFunc      func(op Op)
	WouldBlockFunc func(op Op) PolicyAction
}

func (p PolicyFunc) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p PolicyFunc) OnWouldBlock(op Op) PolicyAction {
	if p.WouldBlockFunc != nil {
		return p.WouldBlockFunc(op)
	}
	return PolicyReturn
}

// ReturnPolicy never retries. It is what the plain helpers use.
type ReturnPolicy struct{}

func (ReturnPolicy) Yield(Op) {}

func (ReturnPolicy) OnWouldBlock(Op) PolicyAction { return PolicyReturn }

// YieldPolicy retries every would-block after calling YieldFunc
// (runtime.Gosched when nil).
type YieldPolicy struct {
	YieldFunc func(op Op)
}

func (p YieldPolicy) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (YieldPolicy) OnWouldBlock(Op) PolicyAction { return PolicyRetry }

// YieldOnWritePolicy retries only when the sink would block. Source-side
// would-block is returned to the caller, which is usually driven by an
// event loop already.
type YieldOnWritePolicy struct {
	YieldFunc func(op Op)
}

func (p YieldOnWritePolicy) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (YieldOnWritePolicy) OnWouldBlock(op Op) PolicyAction {
	if op.isWriteSide() {
		return PolicyRetry
	}
	return PolicyReturn
}

// ProgressPolicy is implemented by policies that care about runs of
// would-block results. Helpers call Progress after a step moved bytes (or a
// flush succeeded), ending the current run.
type ProgressPolicy interface {
	SemanticPolicy
	Progress(op Op)
}

// BackoffPolicy retries every would-block, sleeping with B between attempts.
// After MaxRetries consecutive would-block results (0 means unlimited) it
// gives up and returns ErrWouldBlock. Any progress in between starts a new
// run, both for the limit and for the sleep schedule.
//
// A BackoffPolicy keeps state; use one per helper call.
type BackoffPolicy struct {
	B          Backoff
	MaxRetries int

	retries int
}

func (p *BackoffPolicy) Yield(Op) {
	p.retries++
	p.B.Wait()
}

func (p *BackoffPolicy) OnWouldBlock(Op) PolicyAction {
	if p.MaxRetries > 0 && p.B.Attempts() >= p.MaxRetries {
		return PolicyReturn
	}
	return PolicyRetry
}

// Progress ends the current run of would-block results.
func (p *BackoffPolicy) Progress(Op) { p.B.Reset() }

// Retries returns how many times the policy has yielded in total.
func (p *BackoffPolicy) Retries() int { return p.retries }

// Reset clears the retry count and the backoff run.
func (p *BackoffPolicy) Reset() {
	p.retries = 0
	p.B.Reset()
}

// retry reports whether a helper should try step op again after err.
// Interrupted is always retried; would-block is up to policy.
func retry(err error, op Op, policy SemanticPolicy) bool {
	if IsInterrupted(err) {
		return true
	}
	if policy != nil && IsWouldBlock(err) && policy.OnWouldBlock(op) == PolicyRetry {
		policy.Yield(op)
		return true
	}
	return false
}

// progress tells policy that step op moved forward.
func progress(policy SemanticPolicy, op Op) {
	if pp, ok := policy.(ProgressPolicy); ok {
		pp.Progress(op)
	}
}
