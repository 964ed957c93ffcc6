// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package osio implements the coreio capabilities over operating system
// resources: files and network connections.
//
// OS errors are tagged with coreio kinds: EINTR is interrupted, EAGAIN and
// expired deadlines are would-block, EINVAL is invalid input.
package osio

import (
	"io"
	"os"

	"code.hybscloud.com/coreio"
)

// File is an *os.File seen through the coreio interfaces.
type File struct {
	f *os.File
}

var (
	_ coreio.ReadWriteSeeker  = (*File)(nil)
	_ coreio.StreamLener      = (*File)(nil)
	_ coreio.StreamPositioner = (*File)(nil)
)

// NewFile wraps f. The File takes over closing f.
func NewFile(f *os.File) *File { return &File{f: f} }

// Open opens the named file for reading.
func Open(name string) (*File, error) {
	return OpenFile(name, os.O_RDONLY, 0)
}

// Create creates or truncates the named file for writing.
func Create(name string) (*File, error) {
	return OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// OpenFile is os.OpenFile returning a *File.
func OpenFile(name string, flag int, perm os.FileMode) (*File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, classify(err)
	}
	return &File{f: f}, nil
}

// Stdin, Stdout and Stderr wrap the process's standard streams.
func Stdin() *File  { return &File{f: os.Stdin} }
func Stdout() *File { return &File{f: os.Stdout} }
func Stderr() *File { return &File{f: os.Stderr} }

// OS returns the underlying *os.File.
func (f *File) OS() *os.File { return f.f }

// Name returns the file name as given to Open.
func (f *File) Name() string { return f.f.Name() }

func (f *File) Read(p []byte) (int, error) {
	n, err := f.f.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil || err == io.EOF {
		return 0, nil
	}
	return 0, classify(err)
}

// Write returns the accepted prefix without an error when the OS took part
// of p; the condition that stopped it shows up on the next call.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.f.Write(p)
	if n > 0 || err == nil {
		return n, nil
	}
	return 0, classify(err)
}

// Flush is a no-op: *os.File does not buffer. Use Sync for durability.
func (f *File) Flush() error { return nil }

// Sync commits the file contents to stable storage.
func (f *File) Sync() error { return classify(f.f.Sync()) }

func (f *File) Seek(pos coreio.SeekFrom) (uint64, error) {
	n, err := coreio.FromStdSeeker(f.f).Seek(pos)
	if err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// StreamLen returns the file size without moving the offset.
func (f *File) StreamLen() (uint64, error) {
	fi, err := f.f.Stat()
	if err != nil {
		return 0, classify(err)
	}
	if !fi.Mode().IsRegular() {
		// Devices and pipes: fall back to seeking.
		return seekLen(f)
	}
	return uint64(fi.Size()), nil
}

func seekLen(f *File) (uint64, error) {
	old, err := f.StreamPosition()
	if err != nil {
		return 0, err
	}
	n, err := f.Seek(coreio.End(0))
	if err != nil {
		return 0, err
	}
	if n != old {
		if _, err := f.Seek(coreio.Start(old)); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (f *File) StreamPosition() (uint64, error) {
	n, err := f.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, classify(err)
	}
	return uint64(n), nil
}

// Close closes the file.
func (f *File) Close() error { return classify(f.f.Close()) }
