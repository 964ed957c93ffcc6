// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio

import (
	"bytes"
	"iter"
	"unicode/utf8"
)

// ReadUntil appends bytes from r to *buf up to and including the first
// occurrence of delim, or up to end-of-data. It returns the number of bytes
// appended by this call; 0 means r was already at end-of-data.
//
// Interrupted errors from FillBuf are retried. On any other error the bytes
// appended so far stay in *buf and are counted in n.
func ReadUntil(r BufReader, delim byte, buf *[]byte) (n int, err error) {
	for {
		avail, err := r.FillBuf()
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			return n, err
		}
		if i := bytes.IndexByte(avail, delim); i >= 0 {
			*buf = append(*buf, avail[:i+1]...)
			r.Consume(i + 1)
			return n + i + 1, nil
		}
		used := len(avail)
		*buf = append(*buf, avail...)
		r.Consume(used)
		n += used
		if used == 0 {
			return n, nil
		}
	}
}

// ReadLine appends one line from r, including its trailing '\n' if any, to
// *s and returns its length in bytes.
//
// The line must be valid UTF-8; otherwise *s is left unchanged and ReadLine
// fails with an invalid-data error (or with the read error, if one cut the
// line short).
func ReadLine(r BufReader, s *string) (int, error) {
	var b []byte
	n, err := ReadUntil(r, '\n', &b)
	if !utf8.Valid(b) {
		if err == nil {
			err = errNotUTF8
		}
		return 0, err
	}
	*s += string(b)
	return n, err
}

// Split returns an iterator over the records of r separated by delim. The
// delimiter is not included in the records. A trailing record without a
// delimiter is still yielded; an empty stream yields nothing.
//
// Errors are yielded as items and iteration continues while the caller
// keeps ranging.
func Split(r BufReader, delim byte) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			var rec []byte
			n, err := ReadUntil(r, delim, &rec)
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			if n == 0 {
				return
			}
			if rec[len(rec)-1] == delim {
				rec = rec[:len(rec)-1]
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Lines returns an iterator over the lines of r with the trailing "\n" or
// "\r\n" removed. Lines must be valid UTF-8.
//
// Errors are yielded as items and iteration continues while the caller
// keeps ranging.
func Lines(r BufReader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			var line string
			n, err := ReadLine(r, &line)
			if err != nil {
				if !yield("", err) {
					return
				}
				continue
			}
			if n == 0 {
				return
			}
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
				if len(line) > 0 && line[len(line)-1] == '\r' {
					line = line[:len(line)-1]
				}
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}
