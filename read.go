// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// minReadGrow is the smallest spare capacity ReadToEnd reads into.
const minReadGrow = 512

// ReadExact reads exactly len(p) bytes from r into p.
//
// Interrupted errors are retried. If r reports end-of-data before p is full,
// ReadExact fails with an unexpected-EOF error; the bytes of p past the
// filled prefix are then unspecified. Any other error is returned as is.
//
// If r implements ExactReader, its ReadExact is used instead.
func ReadExact(r Reader, p []byte) error {
	if er, ok := r.(ExactReader); ok {
		return er.ReadExact(p)
	}
	_, err := readExact(r, p, nil)
	return err
}

// ReadExactPolicy is like ReadExact but consults policy when r returns
// ErrWouldBlock.
//
//   - nil policy: identical to ReadExact
//   - non-nil: PolicyRetry triggers policy.Yield(OpRead) and another read
//     into the unfilled suffix; otherwise ErrWouldBlock is returned and the
//     filled prefix is kept.
func ReadExactPolicy(r Reader, p []byte, policy SemanticPolicy) error {
	if policy == nil {
		return ReadExact(r, p)
	}
	_, err := readExact(r, p, policy)
	return err
}

// readExact returns how many bytes of p were filled.
func readExact(r Reader, p []byte, policy SemanticPolicy) (int, error) {
	filled := 0
	for filled < len(p) {
		n, err := r.Read(p[filled:])
		if err != nil {
			if retry(err, OpRead, policy) {
				continue
			}
			return filled, err
		}
		if n == 0 {
			return filled, errFillWholeBuffer
		}
		progress(policy, OpRead)
		filled += n
	}
	return filled, nil
}

// ReadToEnd appends everything r delivers until end-of-data to *buf and
// returns the number of bytes appended.
//
// Interrupted errors are retried. On any other error the bytes read so far
// stay appended and the count reflects them.
//
// If r implements EndReader, its ReadToEnd is used instead.
func ReadToEnd(r Reader, buf *[]byte) (int, error) {
	if er, ok := r.(EndReader); ok {
		return er.ReadToEnd(buf)
	}
	return readToEnd(r, buf)
}

func readToEnd(r Reader, buf *[]byte) (int, error) {
	b := *buf
	start := len(b)
	if lower, _, _ := SizeHint(r); lower > 0 {
		b = slices.Grow(b, lower)
	}
	for {
		if len(b) == cap(b) {
			b = slices.Grow(b, minReadGrow)
		}
		n, err := r.Read(b[len(b):cap(b)])
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			*buf = b
			return len(b) - start, err
		}
		if n == 0 {
			*buf = b
			return len(b) - start, nil
		}
		b = b[:len(b)+n]
	}
}

// ReadToString is like ReadToEnd but appends to *s, and only if the bytes
// read form valid UTF-8. Otherwise *s is left unchanged and ReadToString
// fails with an invalid-data error (or with the read error, if one ended
// the stream).
func ReadToString(r Reader, s *string) (int, error) {
	var b []byte
	n, err := ReadToEnd(r, &b)
	if !utf8.Valid(b) {
		if err == nil {
			err = errNotUTF8
		}
		return 0, err
	}
	*s += string(b)
	return n, err
}

// Bytes returns an iterator over the bytes of r, one read per byte.
//
// Iteration stops at end-of-data. Interrupted errors are retried. Any other
// error is yielded as an item; iteration goes on for as long as the caller
// keeps ranging, so a caller that wants to stop on error must break.
func Bytes(r Reader) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		var one [1]byte
		for {
			n, err := r.Read(one[:])
			switch {
			case err != nil:
				if IsInterrupted(err) {
					continue
				}
				if !yield(0, err) {
					return
				}
			case n == 0:
				return
			default:
				if !yield(one[0], nil) {
					return
				}
			}
		}
	}
}

// RefReader is a non-owning view of a Reader, see ByRef.
type RefReader struct {
	r Reader
}

// ByRef returns a view that forwards to r.
//
// It lets an adapter borrow r for a while: wrap ByRef(r) in Take or Chain,
// use the adapter, drop it, and keep reading from r where it stopped. Only
// Read and ReadExact are forwarded; other optional interfaces of r are hidden.
func ByRef(r Reader) *RefReader { return &RefReader{r: r} }

func (b *RefReader) Read(p []byte) (int, error) { return b.r.Read(p) }

func (b *RefReader) ReadExact(p []byte) error { return ReadExact(b.r, p) }

// ReadVectored reads into bufs.
//
// If r implements VectoredReader it is used; otherwise the first non-empty
// buffer is handed to r.Read.
func ReadVectored(r Reader, bufs [][]byte) (int, error) {
	if vr, ok := r.(VectoredReader); ok {
		return vr.ReadVectored(bufs)
	}
	return r.Read(firstNonEmpty(bufs))
}

// IsReadVectored reports whether r has a real scatter read.
func IsReadVectored(r Reader) bool {
	_, ok := r.(VectoredReader)
	return ok
}

// SizeHint returns bounds on the bytes r will still deliver, or
// (0, 0, false) when r does not implement SizeHinter.
func SizeHint(r Reader) (lower int, upper int, bounded bool) {
	if sh, ok := r.(SizeHinter); ok {
		return sh.SizeHint()
	}
	return 0, 0, false
}

func firstNonEmpty(bufs [][]byte) []byte {
	for _, b := range bufs {
		if len(b) > 0 {
			return b
		}
	}
	return nil
}

func anyNonEmpty(bufs [][]byte) bool {
	return firstNonEmpty(bufs) != nil
}
