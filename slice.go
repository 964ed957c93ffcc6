// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

// SliceReader reads from a byte slice, shrinking its view as bytes are
// consumed. It implements Reader and BufReader.
type SliceReader struct {
	b []byte
}

// NewSliceReader returns a SliceReader over b. b is not copied.
func NewSliceReader(b []byte) *SliceReader { return &SliceReader{b: b} }

// Len returns the number of unread bytes.
func (s *SliceReader) Len() int { return len(s.b) }

// Bytes returns the unread bytes.
func (s *SliceReader) Bytes() []byte { return s.b }

func (s *SliceReader) Read(p []byte) (int, error) {
	n := copy(p, s.b)
	s.b = s.b[n:]
	return n, nil
}

// ReadExact fails without consuming anything if fewer than len(p) bytes
// remain.
func (s *SliceReader) ReadExact(p []byte) error {
	if len(p) > len(s.b) {
		return errFillWholeBuffer
	}
	copy(p, s.b)
	s.b = s.b[len(p):]
	return nil
}

func (s *SliceReader) ReadVectored(bufs [][]byte) (int, error) {
	total := 0
	for _, b := range bufs {
		n, _ := s.Read(b)
		total += n
		if len(s.b) == 0 {
			break
		}
	}
	return total, nil
}

func (s *SliceReader) ReadToEnd(buf *[]byte) (int, error) {
	n := len(s.b)
	*buf = append(*buf, s.b...)
	s.b = s.b[n:]
	return n, nil
}

func (s *SliceReader) SizeHint() (lower int, upper int, bounded bool) {
	return len(s.b), len(s.b), true
}

func (s *SliceReader) FillBuf() ([]byte, error) { return s.b, nil }

// Consume panics if n exceeds the unread length.
func (s *SliceReader) Consume(n int) { s.b = s.b[n:] }

// SliceWriter writes into a fixed byte slice, shrinking its view as bytes
// are written. It never grows the slice.
type SliceWriter struct {
	b       []byte
	written int
}

// NewSliceWriter returns a SliceWriter over b.
func NewSliceWriter(b []byte) *SliceWriter { return &SliceWriter{b: b} }

// Available returns the space left.
func (s *SliceWriter) Available() int { return len(s.b) }

// Written returns the number of bytes written so far.
func (s *SliceWriter) Written() int { return s.written }

// Write copies as much of p as fits.
func (s *SliceWriter) Write(p []byte) (int, error) {
	n := copy(s.b, p)
	s.b = s.b[n:]
	s.written += n
	return n, nil
}

func (s *SliceWriter) WriteVectored(bufs [][]byte) (int, error) {
	total := 0
	for _, b := range bufs {
		n, _ := s.Write(b)
		total += n
		if len(s.b) == 0 {
			break
		}
	}
	return total, nil
}

// WriteAll writes the prefix of p that fits and fails with a write-zero
// error if that is not all of p.
func (s *SliceWriter) WriteAll(p []byte) error {
	if n, _ := s.Write(p); n != len(p) {
		return errWriteWholeBuffer
	}
	return nil
}

func (s *SliceWriter) Flush() error { return nil }
