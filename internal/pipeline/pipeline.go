// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipeline runs config.Pipeline descriptions over OS files using
// the coreio adapters.
package pipeline

import (
	"fmt"
	"log/slog"

	"code.hybscloud.com/coreio"
	"code.hybscloud.com/coreio/internal/config"
	"code.hybscloud.com/coreio/internal/logging"
	"code.hybscloud.com/coreio/osio"
)

// Runner executes pipelines.
type Runner struct {
	logger  *slog.Logger
	bufSize int
	open    func(name string) (Source, error)
}

// Source is an input opened by a Runner.
type Source interface {
	coreio.ReadSeeker
	Close() error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithBufferSize sets the buffer size used when a pipeline does not name
// one.
func WithBufferSize(n int) Option {
	return func(r *Runner) { r.bufSize = n }
}

// WithOpener replaces how inputs are opened. Tests use it to serve inputs
// from memory.
func WithOpener(open func(name string) (Source, error)) Option {
	return func(r *Runner) { r.open = open }
}

// New returns a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:  logging.Discard(),
		bufSize: coreio.DefaultBufferSize,
		open:    openOS,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func openOS(name string) (Source, error) {
	if name == config.Stdio {
		return stdin{osio.Stdin()}, nil
	}
	return osio.Open(name)
}

// stdin is left open when the pipeline closes its inputs.
type stdin struct{ *osio.File }

func (stdin) Close() error { return nil }

// Result summarises a run.
type Result struct {
	// Bytes is the number of bytes written to the output, separators
	// included.
	Bytes int64
	// Records is the number of records written when the pipeline splits.
	Records int
	// Digest is the xxhash64 of the output when the pipeline asks for one.
	Digest uint64
}

// Run executes p, writing to out. out is flushed before Run returns.
func (r *Runner) Run(p *config.Pipeline, out coreio.Writer) (res Result, err error) {
	if err := p.Validate(); err != nil {
		return res, err
	}
	bufSize := p.BufferSize
	if bufSize == 0 {
		bufSize = r.bufSize
	}

	srcs := make([]Source, 0, len(p.Inputs))
	defer func() {
		for _, s := range srcs {
			if cerr := s.Close(); cerr != nil {
				r.logger.Warn("closing input", slog.Any("error", cerr))
			}
		}
	}()
	for _, name := range p.Inputs {
		s, err := r.open(name)
		if err != nil {
			return res, fmt.Errorf("open %s: %w", name, err)
		}
		srcs = append(srcs, s)
	}

	skipped, err := r.seekSkip(srcs[0], p.Skip)
	if err != nil {
		return res, fmt.Errorf("skip: %w", err)
	}

	var src coreio.BufReader = coreio.NewBufferedReader(srcs[0], make([]byte, bufSize))
	for _, s := range srcs[1:] {
		src = coreio.ChainBuf(src, coreio.NewBufferedReader(s, make([]byte, bufSize)))
	}
	if rest := p.Skip - skipped; rest > 0 {
		if _, err := coreio.CopyN(Discard, src, rest); err != nil && !coreio.IsUnexpectedEOF(err) {
			return res, fmt.Errorf("skip: %w", err)
		}
	}
	if p.Limit != nil {
		src = coreio.TakeBuf(src, *p.Limit)
	}

	var digest *DigestWriter
	sink := coreio.Writer(coreio.NewBufferedWriter(out, make([]byte, bufSize)))
	if p.Digest {
		digest = NewDigestWriter(sink)
		sink = digest
	}
	counted := &countWriter{w: sink}

	r.logger.Debug("pipeline start",
		slog.Any("inputs", p.Inputs),
		slog.Uint64("skip", p.Skip),
		slog.Bool("split", p.HasDelimiter()))

	if p.HasDelimiter() {
		res.Records, err = writeRecords(counted, src, p.DelimiterByte(), p.RecordSeparator())
	} else {
		_, err = coreio.Copy(counted, src)
	}
	if ferr := coreio.FlushPolicy(counted, nil); err == nil {
		err = ferr
	}
	res.Bytes = counted.n
	if digest != nil {
		res.Digest = digest.Sum64()
	}
	if err != nil {
		return res, err
	}
	r.logger.Info("pipeline done",
		slog.Int64("bytes", res.Bytes),
		slog.Int("records", res.Records))
	return res, nil
}

// seekSkip skips as much of n as fits in s by seeking, and returns how much
// it skipped. Unseekable inputs skip nothing.
func (r *Runner) seekSkip(s Source, n uint64) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	size, err := coreio.StreamLen(s)
	if err != nil {
		r.logger.Debug("input not seekable, skipping by reading", slog.Any("error", err))
		return 0, nil
	}
	pos, err := coreio.StreamPosition(s)
	if err != nil {
		return 0, err
	}
	left := uint64(0)
	if size > pos {
		left = size - pos
	}
	k := min(n, left)
	if _, err := s.Seek(coreio.Current(int64(k))); err != nil {
		return 0, err
	}
	return k, nil
}

func writeRecords(w coreio.Writer, src coreio.BufReader, delim byte, sep []byte) (int, error) {
	records := 0
	for rec, err := range coreio.Split(src, delim) {
		if err != nil {
			return records, err
		}
		if err := coreio.WriteAll(w, rec); err != nil {
			return records, err
		}
		if err := coreio.WriteAll(w, sep); err != nil {
			return records, err
		}
		records++
	}
	return records, nil
}

// Digest returns the xxhash64 of everything r delivers and the byte count.
func Digest(r coreio.Reader) (sum uint64, n int64, err error) {
	d := NewDigestWriter(nil)
	n, err = coreio.Copy(d, r)
	if err != nil {
		return 0, n, err
	}
	return d.Sum64(), n, nil
}

// Discard is a Writer that accepts everything.
var Discard coreio.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func (discard) Flush() error { return nil }

type countWriter struct {
	w coreio.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countWriter) Flush() error { return c.w.Flush() }
