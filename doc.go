// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coreio is a small, allocation-optional I/O layer: capability
// interfaces for byte sources and sinks plus adapters built only on top of
// them.
//
// Capabilities
//   - Reader: pull bytes into a caller-owned buffer. (0, nil) for a non-empty
//     buffer is end-of-data; io.EOF is not used.
//   - Writer: push bytes and Flush. (0, nil) for non-empty input means the
//     sink is full.
//   - Seeker: reposition by Start, End or Current offset.
//   - BufReader: expose an unread region with FillBuf and accept a prefix of
//     it with Consume.
//
// Adapters
//   - Take / TakeBuf bound the number of bytes delivered.
//   - Chain / ChainBuf concatenate two sources.
//   - Cursor tracks a position over an in-memory []byte.
//
// Derived operations (ReadExact, WriteAll, ReadUntil, StreamLen, ...) are
// free functions over the primitive interfaces. Each checks for an optional
// interface (ExactReader, StreamLener, ...) first, so concrete types can
// supply a faster path.
//
// Errors carry an ErrorKind. Interrupted errors are retried transparently by
// every multi-step helper. Would-block errors are returned unchanged unless a
// SemanticPolicy says otherwise (see the *Policy variants).
//
// Bridges to the standard io interfaces live in std.go; OS-backed files and
// connections live in the osio subpackage.
package coreio
