// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coreio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/coreio"
)

func TestWriteAllPartialWrites(t *testing.T) {
	w := &scriptedWriter{steps: []wstep{{2, nil}, {0, coreio.ErrInterrupted}, {1, nil}}}

	require.NoError(t, coreio.WriteAll(w, []byte("hello")))
	assert.Equal(t, "hello", string(w.buf))
	assert.Equal(t, 4, w.writes)
}

func TestWriteAllWriteZero(t *testing.T) {
	w := &scriptedWriter{steps: []wstep{{2, nil}, {0, nil}}}

	err := coreio.WriteAll(w, []byte("hello"))
	assert.ErrorIs(t, err, coreio.ErrWriteZero)
	assert.Equal(t, "he", string(w.buf))
}

func TestWriteAllOtherError(t *testing.T) {
	bad := coreio.NewError(coreio.KindInvalidInput, "closed")
	w := &scriptedWriter{steps: []wstep{{0, bad}}}

	assert.Same(t, bad, coreio.WriteAll(w, []byte("x")))
}

func TestWriteAllPolicy(t *testing.T) {
	w := &scriptedWriter{steps: []wstep{{1, nil}, {0, coreio.ErrWouldBlock}}}
	assert.ErrorIs(t, coreio.WriteAllPolicy(w, []byte("abc"), nil), coreio.ErrWouldBlock)

	p := &recPolicy{onWB: map[coreio.Op]coreio.PolicyAction{coreio.OpWrite: coreio.PolicyRetry}}
	w = &scriptedWriter{steps: []wstep{{1, nil}, {0, coreio.ErrWouldBlock}}}
	require.NoError(t, coreio.WriteAllPolicy(w, []byte("abc"), p))
	assert.Equal(t, "abc", string(w.buf))
	assert.Equal(t, []coreio.Op{coreio.OpWrite}, p.yields)
}

func TestWriteAllFastPath(t *testing.T) {
	w := coreio.NewSliceWriter(make([]byte, 3))

	assert.ErrorIs(t, coreio.WriteAll(w, []byte("hello")), coreio.ErrWriteZero)
	assert.Equal(t, 3, w.Written())
	assert.Zero(t, w.Available())
}

func TestWriteAllVectored(t *testing.T) {
	w := &scriptedWriter{steps: []wstep{{1, nil}, {0, coreio.ErrInterrupted}, {3, nil}}}
	bufs := [][]byte{[]byte("ab"), nil, []byte("cde")}

	require.NoError(t, coreio.WriteAllVectored(w, bufs))
	assert.Equal(t, "abcde", string(w.buf))
}

func TestWriteAllVectoredWriteZero(t *testing.T) {
	w := coreio.NewSliceWriter(make([]byte, 4))
	bufs := [][]byte{[]byte("ab"), nil, []byte("cde")}

	assert.ErrorIs(t, coreio.WriteAllVectored(w, bufs), coreio.ErrWriteZero)
	assert.Equal(t, 4, w.Written())
}

func TestWriteAllVectoredEmpty(t *testing.T) {
	w := &scriptedWriter{}
	require.NoError(t, coreio.WriteAllVectored(w, [][]byte{nil, {}}))
	assert.Zero(t, w.writes)
}

func TestWriteVectoredFallback(t *testing.T) {
	w := &scriptedWriter{}
	n, err := coreio.WriteVectored(w, [][]byte{nil, []byte("ab"), []byte("cd")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ab", string(w.buf))

	assert.False(t, coreio.IsWriteVectored(w))
	assert.True(t, coreio.IsWriteVectored(coreio.NewCursor(nil)))
}

func TestWriteFormatted(t *testing.T) {
	buf := make([]byte, 32)
	w := coreio.NewSliceWriter(buf)

	require.NoError(t, coreio.WriteFormatted(w, "%s=%d", "answer", 42))
	assert.Equal(t, "answer=42", string(buf[:w.Written()]))
}

func TestWriteFormattedSinkError(t *testing.T) {
	w := coreio.NewSliceWriter(make([]byte, 2))

	err := coreio.WriteFormatted(w, "%d", 12345)
	assert.ErrorIs(t, err, coreio.ErrWriteZero)
	assert.NotErrorIs(t, err, coreio.ErrUncategorized)
}

func TestByRefWriter(t *testing.T) {
	w := &scriptedWriter{steps: []wstep{{1, nil}}}
	ref := coreio.ByRefWriter(w)

	require.NoError(t, coreio.WriteAll(ref, []byte("abc")))
	require.NoError(t, ref.Flush())
	assert.Equal(t, "abc", string(w.buf))
	assert.Equal(t, 1, w.flushes)
}
