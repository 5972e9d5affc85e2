package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

type recordingHandler struct {
	level   slog.Level
	handled int
	err     error
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *recordingHandler) Handle(_ context.Context, _ slog.Record) error {
	h.handled++
	return h.err
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(_ string) slog.Handler      { return h }

func TestMultiHandlerRoutesByLevel(t *testing.T) {
	info := &recordingHandler{level: slog.LevelInfo}
	errOnly := &recordingHandler{level: slog.LevelError}
	m := NewMultiHandler(info, errOnly)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	assert.NoError(t, m.Handle(context.Background(), record))

	assert.Equal(t, 1, info.handled)
	assert.Equal(t, 0, errOnly.handled)
}

func TestMultiHandlerFailingSinkDoesNotStopOthers(t *testing.T) {
	broken := &recordingHandler{level: slog.LevelInfo, err: errors.New("sink down")}
	healthy := &recordingHandler{level: slog.LevelInfo}
	m := NewMultiHandler(broken, healthy)

	record := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	err := m.Handle(context.Background(), record)

	assert.Error(t, err)
	assert.Equal(t, 1, broken.handled)
	assert.Equal(t, 1, healthy.handled)
}
