// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/cespare/xxhash/v2"

	"code.hybscloud.com/coreio"
)

// DigestWriter hashes the bytes it passes on with xxhash64.
//
// Only the prefix the next writer accepted is hashed, so the digest always
// matches what was actually written. With a nil next writer every byte is
// accepted.
type DigestWriter struct {
	next coreio.Writer
	h    *xxhash.Digest
}

// NewDigestWriter returns a DigestWriter in front of next.
func NewDigestWriter(next coreio.Writer) *DigestWriter {
	return &DigestWriter{next: next, h: xxhash.New()}
}

func (d *DigestWriter) Write(p []byte) (int, error) {
	n := len(p)
	var err error
	if d.next != nil {
		n, err = d.next.Write(p)
	}
	if n > 0 {
		_, _ = d.h.Write(p[:n])
	}
	return n, err
}

func (d *DigestWriter) Flush() error {
	if d.next == nil {
		return nil
	}
	return d.next.Flush()
}

// Sum64 returns the digest of the bytes written so far.
func (d *DigestWriter) Sum64() uint64 { return d.h.Sum64() }

// Reset clears the digest.
func (d *DigestWriter) Reset() { d.h.Reset() }
