// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import "math"

// DefaultBufferSize is the buffer size used when a buffered wrapper is given
// no storage.
const DefaultBufferSize = 8 * 1024

// BufferedReader gives any Reader the BufReader capability using a
// fixed-size buffer.
//
// The buffer may be supplied by the caller, so no allocation is needed.
type BufferedReader struct {
	r      Reader
	buf    []byte
	pos    int
	filled int
}

// NewBufferedReader returns a BufferedReader reading from r through buf.
// If buf is empty, a DefaultBufferSize buffer is allocated.
func NewBufferedReader(r Reader, buf []byte) *BufferedReader {
	if len(buf) == 0 {
		buf = make([]byte, DefaultBufferSize)
	}
	return &BufferedReader{r: r, buf: buf}
}

// Inner returns the wrapped reader. Reading from it directly skips whatever
// is still buffered.
func (b *BufferedReader) Inner() Reader { return b.r }

// Buffered returns the buffered, unread bytes without reading more.
func (b *BufferedReader) Buffered() []byte { return b.buf[b.pos:b.filled] }

// Capacity returns the buffer size.
func (b *BufferedReader) Capacity() int { return len(b.buf) }

func (b *BufferedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Large reads skip the buffer when it is empty.
	if b.pos == b.filled && len(p) >= len(b.buf) {
		return b.r.Read(p)
	}
	rem, err := b.FillBuf()
	if err != nil {
		return 0, err
	}
	n := copy(p, rem)
	b.Consume(n)
	return n, nil
}

func (b *BufferedReader) FillBuf() ([]byte, error) {
	if b.pos >= b.filled {
		n, err := b.r.Read(b.buf)
		if err != nil {
			return nil, err
		}
		b.pos, b.filled = 0, n
	}
	return b.buf[b.pos:b.filled], nil
}

// Consume clamps n to the buffered length.
func (b *BufferedReader) Consume(n int) {
	if n <= 0 {
		return
	}
	b.pos += n
	if b.pos > b.filled {
		b.pos = b.filled
	}
}

func (b *BufferedReader) SizeHint() (lower int, upper int, bounded bool) {
	buffered := b.filled - b.pos
	lo, hi, ok := SizeHint(b.r)
	lower = buffered + lo
	if lower < lo {
		lower = math.MaxInt
	}
	if !ok || hi > math.MaxInt-buffered {
		return lower, 0, false
	}
	return lower, hi + buffered, true
}

// BufferedWriter batches small writes to a Writer in a fixed-size buffer.
//
// Flush writes out the buffer with WriteAll semantics and then flushes the
// inner writer.
type BufferedWriter struct {
	w   Writer
	buf []byte
	n   int
}

// NewBufferedWriter returns a BufferedWriter writing to w through buf.
// If buf is empty, a DefaultBufferSize buffer is allocated.
func NewBufferedWriter(w Writer, buf []byte) *BufferedWriter {
	if len(buf) == 0 {
		buf = make([]byte, DefaultBufferSize)
	}
	return &BufferedWriter{w: w, buf: buf}
}

// Inner returns the wrapped writer.
func (b *BufferedWriter) Inner() Writer { return b.w }

// Buffered returns the number of bytes waiting to be written.
func (b *BufferedWriter) Buffered() int { return b.n }

// Available returns the free space in the buffer.
func (b *BufferedWriter) Available() int { return len(b.buf) - b.n }

func (b *BufferedWriter) Write(p []byte) (int, error) {
	if len(p) > b.Available() {
		if err := b.flushBuf(); err != nil {
			return 0, err
		}
	}
	if len(p) >= len(b.buf) {
		return b.w.Write(p)
	}
	n := copy(b.buf[b.n:], p)
	b.n += n
	return n, nil
}

func (b *BufferedWriter) Flush() error {
	if err := b.flushBuf(); err != nil {
		return err
	}
	return b.w.Flush()
}

// flushBuf writes out the buffer. Bytes the inner writer did not accept stay
// buffered.
func (b *BufferedWriter) flushBuf() error {
	if b.n == 0 {
		return nil
	}
	written, err := writeAll(b.w, b.buf[:b.n], OpWrite, nil)
	if written > 0 {
		b.n = copy(b.buf, b.buf[written:b.n])
	}
	return err
}
