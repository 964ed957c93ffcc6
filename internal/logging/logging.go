// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging builds the slog loggers used by the command-line tool.
package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// New returns a logger writing to stderr: colored text through tint when
// stderr is a terminal, JSON otherwise.
func New(level slog.Level) *slog.Logger {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(DiscardHandler{}) }

// DiscardHandler implements slog.Handler and drops every record.
type DiscardHandler struct{}

func (DiscardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (DiscardHandler) Handle(context.Context, slog.Record) error { return nil }

func (h DiscardHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h DiscardHandler) WithGroup(string) slog.Handler { return h }
