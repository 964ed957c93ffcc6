// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import "fmt"

// WriteAll writes all of p to w.
//
// Interrupted errors are retried. If w accepts zero bytes while data
// remains, WriteAll fails with a write-zero error. Any other error is
// returned as is.
//
// If w implements AllWriter, its WriteAll is used instead.
func WriteAll(w Writer, p []byte) error {
	if aw, ok := w.(AllWriter); ok {
		return aw.WriteAll(p)
	}
	_, err := writeAll(w, p, OpWrite, nil)
	return err
}

// WriteAllPolicy is like WriteAll but consults policy when w returns
// ErrWouldBlock.
//
//   - nil policy: identical to WriteAll
//   - non-nil: PolicyRetry triggers policy.Yield(OpWrite) and a retry of the
//     unwritten suffix; otherwise ErrWouldBlock is returned.
func WriteAllPolicy(w Writer, p []byte, policy SemanticPolicy) error {
	if policy == nil {
		return WriteAll(w, p)
	}
	_, err := writeAll(w, p, OpWrite, policy)
	return err
}

// writeAll returns how many bytes of p were accepted.
func writeAll(w Writer, p []byte, op Op, policy SemanticPolicy) (int, error) {
	written := 0
	for written < len(p) {
		n, err := w.Write(p[written:])
		if n > 0 {
			written += n
			progress(policy, op)
		}
		if err != nil {
			if retry(err, op, policy) {
				continue
			}
			return written, err
		}
		if n == 0 {
			return written, errWriteWholeBuffer
		}
	}
	return written, nil
}

// FlushPolicy calls w.Flush, retrying interrupted errors and, according to
// policy, would-block errors. A nil policy only retries interrupted.
func FlushPolicy(w Writer, policy SemanticPolicy) error {
	for {
		err := w.Flush()
		if err == nil {
			progress(policy, OpFlush)
			return nil
		}
		if !retry(err, OpFlush, policy) {
			return err
		}
	}
}

// WriteVectored writes from bufs.
//
// If w implements VectoredWriter it is used; otherwise the first non-empty
// buffer is handed to w.Write.
func WriteVectored(w Writer, bufs [][]byte) (int, error) {
	if vw, ok := w.(VectoredWriter); ok {
		return vw.WriteVectored(bufs)
	}
	return w.Write(firstNonEmpty(bufs))
}

// IsWriteVectored reports whether w has a real gather write.
func IsWriteVectored(w Writer) bool {
	_, ok := w.(VectoredWriter)
	return ok
}

// WriteAllVectored writes every buffer in bufs, in order.
//
// It follows WriteAll's rules for interrupted and zero-length writes. The
// elements of bufs are resliced as data is written, so their contents are
// unspecified afterwards.
func WriteAllVectored(w Writer, bufs [][]byte) error {
	bufs = advanceBufs(bufs, 0)
	for len(bufs) > 0 {
		n, err := WriteVectored(w, bufs)
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			return err
		}
		if n == 0 {
			return errWriteWholeBuffer
		}
		bufs = advanceBufs(bufs, n)
	}
	return nil
}

// advanceBufs drops n written bytes from the front of bufs, skipping any
// buffers that end up empty.
func advanceBufs(bufs [][]byte, n int) [][]byte {
	for len(bufs) > 0 && n >= len(bufs[0]) {
		n -= len(bufs[0])
		bufs = bufs[1:]
	}
	if len(bufs) > 0 {
		bufs[0] = bufs[0][n:]
	}
	return bufs
}

// WriteFormatted formats according to format and writes the result to w
// with WriteAll.
//
// An error from w is returned unchanged. A formatting failure that did not
// come from w is reported as an uncategorized "formatter error".
func WriteFormatted(w Writer, format string, args ...any) error {
	a := fmtAdapter{w: w}
	if _, err := fmt.Fprintf(&a, format, args...); err != nil {
		if a.err != nil {
			return a.err
		}
		return errFormatter
	}
	return nil
}

// fmtAdapter keeps the sink's error so it can be told apart from a
// formatter failure.
type fmtAdapter struct {
	w   Writer
	err error
}

func (a *fmtAdapter) Write(p []byte) (int, error) {
	if err := WriteAll(a.w, p); err != nil {
		a.err = err
		return 0, err
	}
	return len(p), nil
}

// RefWriter is a non-owning view of a Writer, see ByRefWriter.
type RefWriter struct {
	w Writer
}

// ByRefWriter returns a view that forwards Write, Flush and WriteAll to w.
func ByRefWriter(w Writer) *RefWriter { return &RefWriter{w: w} }

func (b *RefWriter) Write(p []byte) (int, error) { return b.w.Write(p) }

func (b *RefWriter) Flush() error { return b.w.Flush() }

func (b *RefWriter) WriteAll(p []byte) error { return WriteAll(b.w, p) }
