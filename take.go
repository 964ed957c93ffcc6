// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import "math"

// TakeReader delivers at most a fixed number of bytes from an inner Reader.
// It is created by Take.
type TakeReader struct {
	r     Reader
	limit uint64
}

// Take returns a Reader that reads from r but reports end-of-data after
// limit bytes. Once the limit is used up, r is no longer called at all, so a
// source that would block is never probed.
func Take(r Reader, limit uint64) *TakeReader {
	return &TakeReader{r: r, limit: limit}
}

// Limit returns how many more bytes may be read.
func (t *TakeReader) Limit() uint64 { return t.limit }

// SetLimit replaces the remaining limit with n.
//
// The new limit does not take into account bytes already read: raising it
// after partial consumption lets n more bytes through.
func (t *TakeReader) SetLimit(n uint64) { t.limit = n }

// Inner returns the wrapped reader. Reading from it directly bypasses the
// limit accounting.
func (t *TakeReader) Inner() Reader { return t.r }

func (t *TakeReader) Read(p []byte) (int, error) {
	if t.limit == 0 {
		return 0, nil
	}
	if uint64(len(p)) > t.limit {
		p = p[:t.limit]
	}
	n, err := t.r.Read(p)
	t.sub(n)
	return n, err
}

func (t *TakeReader) sub(n int) {
	if n <= 0 {
		return
	}
	if uint64(n) > t.limit {
		t.limit = 0
		return
	}
	t.limit -= uint64(n)
}

func (t *TakeReader) SizeHint() (lower int, upper int, bounded bool) {
	if t.limit == 0 {
		return 0, 0, true
	}
	lo, hi, ok := SizeHint(t.r)
	if uint64(lo) > t.limit {
		lo = int(t.limit)
	}
	switch {
	case ok:
		if uint64(hi) > t.limit {
			hi = int(t.limit)
		}
		return lo, hi, true
	case t.limit <= math.MaxInt:
		return lo, int(t.limit), true
	default:
		return lo, 0, false
	}
}

// BufTakeReader is a TakeReader over a BufReader. It is created by TakeBuf.
type BufTakeReader struct {
	TakeReader
	br BufReader
}

// TakeBuf is like Take but keeps the buffered capability of r.
func TakeBuf(r BufReader, limit uint64) *BufTakeReader {
	return &BufTakeReader{TakeReader: TakeReader{r: r, limit: limit}, br: r}
}

// FillBuf returns the inner region cut down to the remaining limit.
func (t *BufTakeReader) FillBuf() ([]byte, error) {
	if t.limit == 0 {
		return nil, nil
	}
	buf, err := t.br.FillBuf()
	if err != nil {
		return nil, err
	}
	if uint64(len(buf)) > t.limit {
		buf = buf[:t.limit]
	}
	return buf, nil
}

// Consume caps n to the remaining limit before forwarding it, so reporting
// an oversized amount cannot reset the budget.
func (t *BufTakeReader) Consume(n int) {
	if n < 0 {
		n = 0
	}
	if uint64(n) > t.limit {
		n = int(t.limit)
	}
	t.limit -= uint64(n)
	t.br.Consume(n)
}
