// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/coreio/internal/logging"
)

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))

	h := logging.DiscardHandler{}
	assert.Equal(t, h, h.WithAttrs([]slog.Attr{slog.Int("n", 1)}))
	assert.Equal(t, h, h.WithGroup("g"))
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
}

func TestNewLevel(t *testing.T) {
	l := logging.New(slog.LevelWarn)
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelError))
}
