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

func TestCursorRoundTrip(t *testing.T) {
	c := coreio.NewCursor(make([]byte, 8))

	require.NoError(t, coreio.WriteAll(c, []byte("abcd")))
	assert.EqualValues(t, 4, c.Position())

	require.NoError(t, coreio.Rewind(c))
	buf := make([]byte, 4)
	require.NoError(t, coreio.ReadExact(c, buf))
	assert.Equal(t, "abcd", string(buf))
}

func TestCursorWriteAllPastCapacity(t *testing.T) {
	c := coreio.NewCursor(make([]byte, 3))

	assert.ErrorIs(t, coreio.WriteAll(c, []byte("hello")), coreio.ErrWriteZero)
	assert.Equal(t, "hel", string(c.Bytes()))
	assert.EqualValues(t, 3, c.Position())
}

func TestCursorWriteTruncates(t *testing.T) {
	c := coreio.NewCursor(make([]byte, 3))

	n, err := c.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = c.Write([]byte("!"))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, c.Bytes(), 3)
}

func TestCursorPastEnd(t *testing.T) {
	c := coreio.NewCursor([]byte("abc"))

	p, err := c.Seek(coreio.Start(100))
	require.NoError(t, err)
	assert.EqualValues(t, 100, p)
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.RemainingSlice())

	n, err := c.Read(make([]byte, 4))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = c.Write([]byte("x"))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "abc", string(c.Bytes()))
}

func TestCursorReadExactDoesNotAdvanceOnFailure(t *testing.T) {
	c := coreio.NewCursor([]byte("abc"))
	c.SetPosition(1)

	assert.ErrorIs(t, coreio.ReadExact(c, make([]byte, 3)), coreio.ErrUnexpectedEOF)
	assert.EqualValues(t, 1, c.Position())
}

func TestCursorVectored(t *testing.T) {
	c := coreio.NewCursor([]byte("abcde"))
	bufs := [][]byte{make([]byte, 2), make([]byte, 2), make([]byte, 2)}

	n, err := c.ReadVectored(bufs)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "e", string(bufs[2][:1]))

	w := coreio.NewCursor(make([]byte, 3))
	n, err = w.WriteVectored([][]byte{[]byte("ab"), []byte("cd"), []byte("ef")})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", string(w.Bytes()))
}

func TestCursorBufRead(t *testing.T) {
	c := coreio.NewCursor([]byte("hello"))

	buf, err := c.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))
	c.Consume(2)
	assert.Equal(t, "llo", string(c.RemainingSlice()))

	lo, hi, ok := c.SizeHint()
	assert.Equal(t, []any{3, 3, true}, []any{lo, hi, ok})
	require.NoError(t, c.Flush())
}
