// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import "math"

// ChainReader reads from one Reader until it is exhausted, then from another.
// It is created by Chain.
type ChainReader struct {
	first     Reader
	second    Reader
	doneFirst bool
}

// Chain returns a Reader that delivers everything from first, then
// everything from second.
//
// first counts as exhausted the first time it returns (0, nil) for a
// non-empty buffer; that same call goes on to second, and first is never
// read again.
func Chain(first, second Reader) *ChainReader {
	return &ChainReader{first: first, second: second}
}

// Inners returns the two wrapped readers.
func (c *ChainReader) Inners() (first, second Reader) { return c.first, c.second }

func (c *ChainReader) Read(p []byte) (int, error) {
	if !c.doneFirst {
		n, err := c.first.Read(p)
		if err != nil || n != 0 || len(p) == 0 {
			return n, err
		}
		c.doneFirst = true
	}
	return c.second.Read(p)
}

func (c *ChainReader) ReadVectored(bufs [][]byte) (int, error) {
	if !c.doneFirst {
		n, err := ReadVectored(c.first, bufs)
		if err != nil || n != 0 || !anyNonEmpty(bufs) {
			return n, err
		}
		c.doneFirst = true
	}
	return ReadVectored(c.second, bufs)
}

// SizeHint sums both hints. The lower bound saturates; the upper bound is
// unknown if either is unknown or the sum overflows.
func (c *ChainReader) SizeHint() (lower int, upper int, bounded bool) {
	lo1, hi1, ok1 := SizeHint(c.first)
	lo2, hi2, ok2 := SizeHint(c.second)
	lower = lo1 + lo2
	if lower < lo1 {
		lower = math.MaxInt
	}
	if !ok1 || !ok2 || hi1 > math.MaxInt-hi2 {
		return lower, 0, false
	}
	return lower, hi1 + hi2, true
}

// BufChainReader is a ChainReader over two BufReaders. It is created by
// ChainBuf.
type BufChainReader struct {
	ChainReader
	bfirst  BufReader
	bsecond BufReader
}

// ChainBuf is like Chain but keeps the buffered capability. The switch to
// second happens once, when first's FillBuf returns an empty region.
func ChainBuf(first, second BufReader) *BufChainReader {
	return &BufChainReader{
		ChainReader: ChainReader{first: first, second: second},
		bfirst:      first,
		bsecond:     second,
	}
}

func (c *BufChainReader) FillBuf() ([]byte, error) {
	if !c.doneFirst {
		buf, err := c.bfirst.FillBuf()
		if err != nil || len(buf) != 0 {
			return buf, err
		}
		c.doneFirst = true
	}
	return c.bsecond.FillBuf()
}

func (c *BufChainReader) Consume(n int) {
	if !c.doneFirst {
		c.bfirst.Consume(n)
		return
	}
	c.bsecond.Consume(n)
}
