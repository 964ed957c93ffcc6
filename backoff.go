// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// DefaultBackoffBase is the first sleep of a run (500µs).
	DefaultBackoffBase = 500 * time.Microsecond

	// DefaultBackoffMax caps a single sleep (100ms).
	DefaultBackoffMax = 100 * time.Millisecond
)

// Backoff is the sleep schedule for one run of would-block results.
//
// A run is the sequence of Waits since the last Reset. Its k-th sleep falls
// into block n, where block n holds n sleeps of Base×n (capped at Max). Each
// sleep is spread by up to ±12.5%. BackoffPolicy resets the run whenever a
// helper makes progress, so a source that trickles data never climbs the
// schedule.
//
// Zero Base or Max fall back to DefaultBackoffBase and DefaultBackoffMax.
type Backoff struct {
	Base time.Duration
	Max  time.Duration

	attempts int
}

// Wait sleeps for the next duration of the run.
func (b *Backoff) Wait() { time.Sleep(b.Next()) }

// Next returns the next jittered sleep and counts it as an attempt.
func (b *Backoff) Next() time.Duration {
	d := b.Duration()
	b.attempts++
	if spread := int64(d) / 8; spread > 0 {
		d += time.Duration(rand.Int64N(2*spread+1) - spread)
	}
	return d
}

// Attempts returns how many sleeps the current run has taken.
func (b *Backoff) Attempts() int { return b.attempts }

// Reset starts a new run.
func (b *Backoff) Reset() { b.attempts = 0 }

// Block returns the block the next sleep falls into, starting at 1.
func (b *Backoff) Block() int { return blockOf(b.attempts) }

// Duration returns the next sleep without jitter.
func (b *Backoff) Duration() time.Duration {
	base, ceil := b.Base, b.Max
	if base <= 0 {
		base = DefaultBackoffBase
	}
	if ceil <= 0 {
		ceil = DefaultBackoffMax
	}
	n := b.Block()
	if int64(n) > int64(ceil/base) {
		return ceil
	}
	return min(time.Duration(n)*base, ceil)
}

// blockOf returns the smallest n with n(n+1)/2 > k.
func blockOf(k int) int {
	n := int((math.Sqrt(8*float64(k)+1) - 1) / 2)
	for n*(n+1)/2 <= k {
		n++
	}
	for n > 1 && (n-1)*n/2 > k {
		n--
	}
	return n
}
