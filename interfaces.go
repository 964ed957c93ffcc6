// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

// Reader is implemented by byte sources.
//
// Read fills as much of p as is readily available and returns the count,
// 0 <= n <= len(p). A return of (0, nil) with len(p) > 0 signals end-of-data;
// it is not necessarily permanent. Read makes no blocking guarantee: a source
// that cannot proceed without blocking returns ErrWouldBlock instead.
//
// An interrupted error means nothing was consumed and the call may be retried.
// Any other error guarantees n == 0.
type Reader interface {
	Read(p []byte) (n int, err error)
}

// Writer is implemented by byte sinks.
//
// Write accepts some prefix of p and returns its length, 0 <= n <= len(p).
// A return of (0, nil) with len(p) > 0 means the sink can take no more data.
//
// Flush forces buffered bytes to their final destination. Failing to flush
// everything is an error.
type Writer interface {
	Write(p []byte) (n int, err error)
	Flush() error
}

// Seeker is implemented by streams that can be repositioned.
//
// Seek returns the new absolute position. Seeking before byte 0 fails with
// an invalid-input error; seeking past the end is allowed and its meaning is
// up to the implementation.
type Seeker interface {
	Seek(pos SeekFrom) (uint64, error)
}

// BufReader is a Reader with an internal buffer.
//
// FillBuf returns the unread region, reading from the underlying source only
// if the region is empty. An empty region with a nil error is end-of-data.
// The returned slice is owned by the BufReader and is valid only until the
// next call that mutates it.
//
// Consume marks the first n bytes of the region as read. n must not exceed
// the length of the region returned by the latest FillBuf.
type BufReader interface {
	Reader
	FillBuf() ([]byte, error)
	Consume(n int)
}

// ReadWriter groups Reader and Writer.
type ReadWriter interface {
	Reader
	Writer
}

// ReadSeeker groups Reader and Seeker.
type ReadSeeker interface {
	Reader
	Seeker
}

// WriteSeeker groups Writer and Seeker.
type WriteSeeker interface {
	Writer
	Seeker
}

// ReadWriteSeeker groups Reader, Writer and Seeker.
type ReadWriteSeeker interface {
	Reader
	Writer
	Seeker
}

// Optional fast paths. The derived helpers check for these before falling
// back to the generic loop, so implementations must stay observably
// equivalent to that loop.

// ExactReader is implemented by readers with a faster ReadExact.
type ExactReader interface {
	ReadExact(p []byte) error
}

// EndReader is implemented by readers with a faster ReadToEnd.
type EndReader interface {
	ReadToEnd(buf *[]byte) (int, error)
}

// VectoredReader is implemented by readers that scatter into several
// buffers in one call.
type VectoredReader interface {
	ReadVectored(bufs [][]byte) (int, error)
}

// VectoredWriter is implemented by writers that gather from several
// buffers in one call.
type VectoredWriter interface {
	WriteVectored(bufs [][]byte) (int, error)
}

// AllWriter is implemented by writers with a faster WriteAll.
type AllWriter interface {
	WriteAll(p []byte) error
}

// SizeHinter reports bounds on the number of bytes a reader will still
// deliver. When bounded is false the upper bound is unknown.
type SizeHinter interface {
	SizeHint() (lower int, upper int, bounded bool)
}

// StreamLener is implemented by seekers that know their length without
// seeking.
type StreamLener interface {
	StreamLen() (uint64, error)
}

// StreamPositioner is implemented by seekers that know their position
// without seeking.
type StreamPositioner interface {
	StreamPosition() (uint64, error)
}
