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

func TestSliceReader(t *testing.T) {
	r := coreio.NewSliceReader([]byte("hello"))
	buf := make([]byte, 2)

	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "he", string(buf[:n]))
	assert.Equal(t, 3, r.Len())

	assert.ErrorIs(t, r.ReadExact(make([]byte, 4)), coreio.ErrUnexpectedEOF)
	assert.Equal(t, 3, r.Len())

	out := []byte("x")
	n, err = r.ReadToEnd(&out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "xllo", string(out))
	assert.Zero(t, r.Len())
}

func TestSliceReaderVectored(t *testing.T) {
	r := coreio.NewSliceReader([]byte("abcdef"))
	bufs := [][]byte{make([]byte, 2), make([]byte, 10), make([]byte, 2)}

	n, err := r.ReadVectored(bufs)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "ab", string(bufs[0]))
	assert.Equal(t, "cdef", string(bufs[1][:4]))
}

func TestSliceReaderConsumePanics(t *testing.T) {
	r := coreio.NewSliceReader([]byte("ab"))
	assert.Panics(t, func() { r.Consume(3) })
}

func TestSliceWriter(t *testing.T) {
	buf := make([]byte, 5)
	w := coreio.NewSliceWriter(buf)

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, w.Available())

	n, err = w.Write([]byte("defg"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "abcde", string(buf))
	assert.Equal(t, 5, w.Written())

	n, err = w.Write([]byte("z"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSliceWriterWriteAllPrefix(t *testing.T) {
	buf := make([]byte, 3)
	w := coreio.NewSliceWriter(buf)

	assert.ErrorIs(t, w.WriteAll([]byte("hello")), coreio.ErrWriteZero)
	assert.Equal(t, "hel", string(buf))
}

func TestSliceWriterVectored(t *testing.T) {
	buf := make([]byte, 4)
	w := coreio.NewSliceWriter(buf)

	n, err := w.WriteVectored([][]byte{[]byte("ab"), []byte("cdef")})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abcd", string(buf))
}
