// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

// Cursor adds a position to an in-memory []byte and implements Reader,
// Writer, Seeker and BufReader on top of it.
//
// The position may lie past the end of the slice: reads there return 0 bytes
// and writes there write nothing. Writes overwrite the slice in place and
// never grow it.
type Cursor struct {
	buf []byte
	pos uint64
}

// NewCursor returns a Cursor over buf positioned at 0.
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

// Bytes returns the underlying slice.
func (c *Cursor) Bytes() []byte { return c.buf }

// Position returns the current position.
func (c *Cursor) Position() uint64 { return c.pos }

// SetPosition moves the cursor to pos, which may be past the end.
func (c *Cursor) SetPosition(pos uint64) { c.pos = pos }

// RemainingSlice returns the bytes from min(position, len) to the end.
func (c *Cursor) RemainingSlice() []byte { return c.buf[c.offset():] }

// IsEmpty reports whether the position is at or past the end.
func (c *Cursor) IsEmpty() bool { return c.pos >= uint64(len(c.buf)) }

func (c *Cursor) offset() int {
	if c.pos >= uint64(len(c.buf)) {
		return len(c.buf)
	}
	return int(c.pos)
}

func (c *Cursor) Read(p []byte) (int, error) {
	n := copy(p, c.RemainingSlice())
	c.pos += uint64(n)
	return n, nil
}

// ReadExact fails without moving the cursor if fewer than len(p) bytes
// remain.
func (c *Cursor) ReadExact(p []byte) error {
	rem := c.RemainingSlice()
	if len(p) > len(rem) {
		return errFillWholeBuffer
	}
	copy(p, rem)
	c.pos += uint64(len(p))
	return nil
}

// ReadVectored fills bufs in order and stops at the first one it cannot
// fill completely.
func (c *Cursor) ReadVectored(bufs [][]byte) (int, error) {
	total := 0
	for _, b := range bufs {
		n, _ := c.Read(b)
		total += n
		if n < len(b) {
			break
		}
	}
	return total, nil
}

func (c *Cursor) SizeHint() (lower int, upper int, bounded bool) {
	n := len(c.RemainingSlice())
	return n, n, true
}

// Write copies p into the slice at the current position, truncated to the
// space left.
func (c *Cursor) Write(p []byte) (int, error) {
	n := copy(c.buf[c.offset():], p)
	c.pos += uint64(n)
	return n, nil
}

// WriteVectored writes bufs in order and stops at the first one that does
// not fit completely.
func (c *Cursor) WriteVectored(bufs [][]byte) (int, error) {
	total := 0
	for _, b := range bufs {
		n, _ := c.Write(b)
		total += n
		if n < len(b) {
			break
		}
	}
	return total, nil
}

func (c *Cursor) Flush() error { return nil }

// Seek implements Seeker. Start targets are taken as is, even past the end.
func (c *Cursor) Seek(pos SeekFrom) (uint64, error) {
	p, err := ResolveSeek(pos, c.pos, uint64(len(c.buf)))
	if err != nil {
		return 0, err
	}
	c.pos = p
	return p, nil
}

func (c *Cursor) StreamLen() (uint64, error) { return uint64(len(c.buf)), nil }

func (c *Cursor) StreamPosition() (uint64, error) { return c.pos, nil }

func (c *Cursor) FillBuf() ([]byte, error) { return c.RemainingSlice(), nil }

func (c *Cursor) Consume(n int) {
	if n > 0 {
		c.pos += uint64(n)
	}
}
