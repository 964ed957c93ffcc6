// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config describes byte pipelines in YAML.
//
// A pipeline chains its inputs, skips a prefix, optionally limits the number
// of bytes, optionally splits the stream into records, and writes the result
// to an output:
//
//	inputs: [a.log, b.log]
//	skip: 16
//	limit: 4096
//	delimiter: "\n"
//	separator: "\n"
//	output: "-"
//	digest: true
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxBufferSize bounds buffer_size.
const MaxBufferSize = 16 << 20

// Stdio is the path that stands for standard input or output.
const Stdio = "-"

// Pipeline is one byte pipeline.
type Pipeline struct {
	// Inputs are read one after the other. "-" is standard input.
	Inputs []string `yaml:"inputs"`

	// Skip drops this many bytes from the front of the chained stream.
	Skip uint64 `yaml:"skip"`

	// Limit caps the bytes taken after Skip. Absent means no limit.
	Limit *uint64 `yaml:"limit,omitempty"`

	// Delimiter, when set, splits the stream into records at this byte.
	Delimiter string `yaml:"delimiter,omitempty"`

	// Separator is written after each record. Defaults to "\n".
	Separator *string `yaml:"separator,omitempty"`

	// BufferSize is the per-input and output buffer size. Zero means the
	// default.
	BufferSize int `yaml:"buffer_size,omitempty"`

	// Output is the destination path. Empty or "-" is standard output.
	Output string `yaml:"output,omitempty"`

	// Digest requests an xxhash64 of everything written to Output.
	Digest bool `yaml:"digest,omitempty"`
}

// Load reads and validates a pipeline file.
func Load(path string) (*Pipeline, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a pipeline document.
func Parse(b []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

var (
	ErrNoInputs       = errors.New("pipeline has no inputs")
	ErrBadDelimiter   = errors.New("delimiter must be a single byte")
	ErrBadBufferSize  = errors.New("buffer_size out of range")
	ErrStdinTwice     = errors.New("standard input listed more than once")
	ErrSeparatorNoRec = errors.New("separator given without delimiter")
)

// Validate checks p for consistency.
func (p *Pipeline) Validate() error {
	if len(p.Inputs) == 0 {
		return ErrNoInputs
	}
	if len(p.Delimiter) > 1 {
		return ErrBadDelimiter
	}
	if p.BufferSize < 0 || p.BufferSize > MaxBufferSize {
		return ErrBadBufferSize
	}
	if p.Separator != nil && p.Delimiter == "" {
		return ErrSeparatorNoRec
	}
	stdin := 0
	for _, in := range p.Inputs {
		if in == Stdio {
			stdin++
		}
	}
	if stdin > 1 {
		return ErrStdinTwice
	}
	return nil
}

// HasDelimiter reports whether the pipeline splits into records.
func (p *Pipeline) HasDelimiter() bool { return p.Delimiter != "" }

// DelimiterByte returns the record delimiter.
func (p *Pipeline) DelimiterByte() byte { return p.Delimiter[0] }

// RecordSeparator returns the bytes written after each record.
func (p *Pipeline) RecordSeparator() []byte {
	if p.Separator == nil {
		return []byte{'\n'}
	}
	return []byte(*p.Separator)
}

// ToStdout reports whether the output is standard output.
func (p *Pipeline) ToStdout() bool { return p.Output == "" || p.Output == Stdio }
