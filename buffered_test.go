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

func TestBufferedReaderDefaults(t *testing.T) {
	br := coreio.NewBufferedReader(coreio.NewSliceReader(nil), nil)
	assert.Equal(t, coreio.DefaultBufferSize, br.Capacity())
}

func TestBufferedReaderSmallReads(t *testing.T) {
	inner := &countingReader{r: newChunkReader("abcdefgh", 8)}
	br := coreio.NewBufferedReader(inner, make([]byte, 4))
	buf := make([]byte, 1)

	n, err := br.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "a", string(buf[:n]))
	assert.Equal(t, "bcd", string(br.Buffered()))

	for range 3 {
		_, err = br.Read(buf)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, inner.calls)
	assert.Same(t, inner, br.Inner())
}

func TestBufferedReaderEmptyReadNeverTouchesSource(t *testing.T) {
	inner := &countingReader{r: &scriptedReader{steps: []step{{err: coreio.ErrWouldBlock}}}}
	br := coreio.NewBufferedReader(inner, make([]byte, 4))

	n, err := br.Read(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, inner.calls)
	assert.Empty(t, br.Buffered())
}

func TestBufferedReaderLargeReadBypasses(t *testing.T) {
	br := coreio.NewBufferedReader(coreio.NewSliceReader([]byte("0123456789")), make([]byte, 4))
	buf := make([]byte, 10)

	n, err := br.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Empty(t, br.Buffered())
}

func TestBufferedReaderConsumeClamps(t *testing.T) {
	br := coreio.NewBufferedReader(coreio.NewSliceReader([]byte("abcdef")), make([]byte, 4))

	buf, err := br.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(buf))

	br.Consume(10)
	assert.Empty(t, br.Buffered())

	buf, err = br.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, "ef", string(buf))
}

func TestBufferedReaderSizeHint(t *testing.T) {
	br := coreio.NewBufferedReader(coreio.NewSliceReader([]byte("abcdef")), make([]byte, 4))
	_, err := br.FillBuf()
	require.NoError(t, err)

	lo, hi, ok := br.SizeHint()
	assert.Equal(t, []any{6, 6, true}, []any{lo, hi, ok})
}

func TestBufferedWriterBatches(t *testing.T) {
	inner := &scriptedWriter{}
	bw := coreio.NewBufferedWriter(inner, make([]byte, 8))

	require.NoError(t, coreio.WriteAll(bw, []byte("abc")))
	require.NoError(t, coreio.WriteAll(bw, []byte("def")))
	assert.Zero(t, inner.writes)
	assert.Equal(t, 6, bw.Buffered())
	assert.Equal(t, 2, bw.Available())

	require.NoError(t, bw.Flush())
	assert.Equal(t, "abcdef", string(inner.buf))
	assert.Equal(t, 1, inner.writes)
	assert.Equal(t, 1, inner.flushes)
	assert.Same(t, inner, bw.Inner())
}

func TestBufferedWriterLargeWrite(t *testing.T) {
	inner := &scriptedWriter{}
	bw := coreio.NewBufferedWriter(inner, make([]byte, 4))

	require.NoError(t, coreio.WriteAll(bw, []byte("ab")))
	require.NoError(t, coreio.WriteAll(bw, []byte("0123456789")))
	assert.Equal(t, "ab0123456789", string(inner.buf))
	assert.Zero(t, bw.Buffered())
}

func TestBufferedWriterKeepsUnwritten(t *testing.T) {
	inner := &scriptedWriter{steps: []wstep{{2, nil}, {0, nil}}}
	bw := coreio.NewBufferedWriter(inner, make([]byte, 8))
	require.NoError(t, coreio.WriteAll(bw, []byte("abcdef")))

	assert.ErrorIs(t, bw.Flush(), coreio.ErrWriteZero)
	assert.Equal(t, 4, bw.Buffered())

	require.NoError(t, bw.Flush())
	assert.Equal(t, "abcdef", string(inner.buf))
}
