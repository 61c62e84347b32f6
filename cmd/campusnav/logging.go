package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// logHandler is a compact single-line slog handler:
//
//	2026/08/25 14:03:07 INFO route planned from=Main Gate to=Mess
type logHandler struct {
	level slog.Leveler
	attrs []slog.Attr
	mu    *sync.Mutex
	out   io.Writer
}

func newLogHandler(out io.Writer, level slog.Leveler) *logHandler {
	if level == nil {
		level = slog.LevelInfo
	}

	return &logHandler{level: level, out: out, mu: &sync.Mutex{}}
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &logHandler{level: h.level, attrs: merged, out: h.out, mu: h.mu}
}

func (h *logHandler) WithGroup(string) slog.Handler { return h }

func (h *logHandler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message}
	for _, a := range h.attrs {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, strings.Join(parts, " ")+"\n")

	return err
}
