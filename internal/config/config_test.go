// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/coreio/internal/config"
)

const fullPipeline = `
inputs: [a.log, "-"]
skip: 16
limit: 4096
delimiter: "\n"
separator: "\t"
buffer_size: 1024
output: out.txt
digest: true
`

func TestParse(t *testing.T) {
	p, err := config.Parse([]byte(fullPipeline))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.log", "-"}, p.Inputs)
	assert.EqualValues(t, 16, p.Skip)
	require.NotNil(t, p.Limit)
	assert.EqualValues(t, 4096, *p.Limit)
	assert.True(t, p.HasDelimiter())
	assert.Equal(t, byte('\n'), p.DelimiterByte())
	assert.Equal(t, []byte("\t"), p.RecordSeparator())
	assert.Equal(t, 1024, p.BufferSize)
	assert.False(t, p.ToStdout())
	assert.True(t, p.Digest)
}

func TestParseDefaults(t *testing.T) {
	p, err := config.Parse([]byte("inputs: [x]\n"))
	require.NoError(t, err)

	assert.Nil(t, p.Limit)
	assert.False(t, p.HasDelimiter())
	assert.Equal(t, []byte("\n"), p.RecordSeparator())
	assert.True(t, p.ToStdout())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no inputs", "skip: 1\n", config.ErrNoInputs},
		{"long delimiter", "inputs: [x]\ndelimiter: ab\n", config.ErrBadDelimiter},
		{"negative buffer", "inputs: [x]\nbuffer_size: -1\n", config.ErrBadBufferSize},
		{"huge buffer", "inputs: [x]\nbuffer_size: 1073741824\n", config.ErrBadBufferSize},
		{"stdin twice", "inputs: ['-', '-']\n", config.ErrStdinTwice},
		{"separator alone", "inputs: [x]\nseparator: ';'\n", config.ErrSeparatorNoRec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := config.Parse([]byte("inputs: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullPipeline), 0o600))

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.txt", p.Output)

	require.NoError(t, os.WriteFile(path, []byte("skip: 3\n"), 0o600))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrNoInputs)
	assert.Contains(t, err.Error(), path)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
