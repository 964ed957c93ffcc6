// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio_test

import (
	"code.hybscloud.com/coreio"
)

// step is one scripted result: data to deliver, or an error.
type step struct {
	data string
	err  error
}

// scriptedReader replays steps in order and then reports end-of-data. A data
// step longer than the caller's buffer is delivered over several calls.
type scriptedReader struct {
	steps []step
	calls int
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	r.calls++
	if len(r.steps) == 0 {
		return 0, nil
	}
	s := r.steps[0]
	if s.err != nil {
		r.steps = r.steps[1:]
		return 0, s.err
	}
	n := copy(p, s.data)
	if n < len(s.data) {
		r.steps[0].data = s.data[n:]
	} else {
		r.steps = r.steps[1:]
	}
	return n, nil
}

// chunkReader delivers data at most max bytes per call. It implements
// nothing but Reader.
type chunkReader struct {
	data []byte
	max  int
}

func newChunkReader(s string, max int) *chunkReader {
	return &chunkReader{data: []byte(s), max: max}
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(p) > r.max {
		p = p[:r.max]
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

// countingReader counts calls to the wrapped reader.
type countingReader struct {
	r     coreio.Reader
	calls int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.calls++
	return c.r.Read(p)
}

// readSeeker exposes only Read and Seek of a Cursor.
type readSeeker struct{ c *coreio.Cursor }

func (r readSeeker) Read(p []byte) (int, error) { return r.c.Read(p) }

func (r readSeeker) Seek(pos coreio.SeekFrom) (uint64, error) { return r.c.Seek(pos) }

// wstep is one scripted write result: accept up to n bytes and return err.
type wstep struct {
	n   int
	err error
}

// scriptedWriter replays steps and then accepts everything. Flush pops
// flushErrs first.
type scriptedWriter struct {
	steps     []wstep
	flushErrs []error
	buf       []byte
	writes    int
	flushes   int
}

func (w *scriptedWriter) Write(p []byte) (int, error) {
	w.writes++
	if len(w.steps) == 0 {
		w.buf = append(w.buf, p...)
		return len(p), nil
	}
	s := w.steps[0]
	w.steps = w.steps[1:]
	n := min(s.n, len(p))
	w.buf = append(w.buf, p[:n]...)
	return n, s.err
}

func (w *scriptedWriter) Flush() error {
	w.flushes++
	if len(w.flushErrs) == 0 {
		return nil
	}
	err := w.flushErrs[0]
	w.flushErrs = w.flushErrs[1:]
	return err
}

// recPolicy records Yield calls and answers OnWouldBlock from a table.
type recPolicy struct {
	onWB   map[coreio.Op]coreio.PolicyAction
	yields []coreio.Op
}

func (p *recPolicy) Yield(op coreio.Op) { p.yields = append(p.yields, op) }

func (p *recPolicy) OnWouldBlock(op coreio.Op) coreio.PolicyAction {
	if a, ok := p.onWB[op]; ok {
		return a
	}
	return coreio.PolicyReturn
}
