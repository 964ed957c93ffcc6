// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

// Buffer is the default stack buffer used by Copy when none is supplied.
type Buffer [32 * 1024]byte

// Copy moves bytes from src to dst until src reports end-of-data or an
// error occurs, and returns the number of bytes written.
//
// Interrupted errors on either side are retried. ErrWouldBlock is returned
// immediately with the count so far; call Copy again after readiness. Every
// byte read is written before the next read.
//
// If src is a BufReader, Copy works directly on its FillBuf region and only
// consumes what dst accepted, so nothing is lost when dst stops early.
//
// Otherwise bytes are staged through a stack Buffer. If dst would block after
// a partial write, Copy tries to hand the unwritten bytes back by seeking src
// backwards with Seek(Current(-k)) so a later Copy resumes cleanly. If src is
// not a Seeker, it returns ErrNoSeeker: those bytes are gone, and the caller
// should have used a BufReader source or a retrying policy. Any other sink
// error is returned as is.
func Copy(dst Writer, src Reader) (written int64, err error) {
	return copyBuffer(dst, src, nil, nil)
}

// CopyPolicy is like Copy but consults policy when either side returns
// ErrWouldBlock.
//
//   - nil policy: identical to Copy
//   - non-nil: PolicyRetry triggers policy.Yield(op) with OpCopyRead or
//     OpCopyWrite and a retry of that step; otherwise ErrWouldBlock is
//     returned.
func CopyPolicy(dst Writer, src Reader, policy SemanticPolicy) (written int64, err error) {
	return copyBuffer(dst, src, nil, policy)
}

// CopyBuffer is like Copy but stages through buf instead of a stack buffer.
// buf is not used when src is a BufReader. If buf has zero length,
// CopyBuffer panics.
func CopyBuffer(dst Writer, src Reader, buf []byte) (written int64, err error) {
	if buf != nil && len(buf) == 0 {
		panic("empty buffer in CopyBuffer")
	}
	return copyBuffer(dst, src, buf, nil)
}

// CopyN copies n bytes, or until an error, from src to dst.
// On return, written == n if and only if err == nil; running out of input
// early is an unexpected-EOF error.
func CopyN(dst Writer, src Reader, n uint64) (written int64, err error) {
	return CopyNPolicy(dst, src, n, nil)
}

// CopyNPolicy is like CopyN but consults policy on ErrWouldBlock.
func CopyNPolicy(dst Writer, src Reader, n uint64, policy SemanticPolicy) (written int64, err error) {
	if n == 0 {
		return 0, nil
	}
	var lr Reader
	if br, ok := src.(BufReader); ok {
		lr = TakeBuf(br, n)
	} else {
		lr = Take(src, n)
	}
	written, err = copyBuffer(dst, lr, nil, policy)
	if err == nil && uint64(written) < n {
		err = errCopyShort
	}
	return written, err
}

var errCopyShort = NewError(KindUnexpectedEOF, "source ended before the requested count")

func copyBuffer(dst Writer, src Reader, buf []byte, policy SemanticPolicy) (written int64, err error) {
	if br, ok := src.(BufReader); ok {
		return copyBuffered(dst, br, policy)
	}

	var local Buffer
	if buf == nil {
		buf = local[:]
	}

	for {
		nr, er := src.Read(buf)
		if er != nil {
			if retry(er, OpCopyRead, policy) {
				continue
			}
			return written, er
		}
		if nr == 0 {
			return written, nil
		}
		progress(policy, OpCopyRead)
		nw, ew := writeAll(dst, buf[:nr], OpCopyWrite, policy)
		written += int64(nw)
		if ew != nil {
			if nw < nr && IsWouldBlock(ew) {
				if err := rollback(src, nr-nw); err != nil {
					return written, err
				}
			}
			return written, ew
		}
	}
}

// rollback hands k unwritten bytes back to src.
func rollback(src Reader, k int) error {
	s, ok := src.(Seeker)
	if !ok {
		return ErrNoSeeker
	}
	_, err := s.Seek(Current(-int64(k)))
	return err
}

func copyBuffered(dst Writer, src BufReader, policy SemanticPolicy) (written int64, err error) {
	for {
		avail, er := src.FillBuf()
		if er != nil {
			if retry(er, OpCopyRead, policy) {
				continue
			}
			return written, er
		}
		if len(avail) == 0 {
			return written, nil
		}
		progress(policy, OpCopyRead)
		nw, ew := writeAll(dst, avail, OpCopyWrite, policy)
		src.Consume(nw)
		written += int64(nw)
		if ew != nil {
			return written, ew
		}
	}
}
