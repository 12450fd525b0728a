package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestLogger_JSONWithTraceAndService(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(
		WithOutput(&buf),
		WithService("schemasvc"),
		WithTraceID(func(ctx context.Context) string {
			v, _ := ctx.Value(ctxKey{}).(string)
			return v
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-123")
	log.InfoContextf(ctx, "validated %s", "Poll")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "validated Poll", rec["msg"])
	assert.Equal(t, "schemasvc", rec["service"])
	assert.Equal(t, "trace-123", rec["trace_id"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(WithOutput(&buf), WithLevel("warn"))

	log.InfoContext(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	log.WarnContext(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_TextUnixTime(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(Options{Level: "DEBUG", TimeFormat: "Unix", Format: "text"}, WithOutput(&buf))

	log.DebugContext(context.Background(), "tick")
	assert.Regexp(t, `time=\d+ `, buf.String())
}

func TestLogger_FormatAndSourceOptions(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(WithOutput(&buf), WithFormat("text"), WithSource())

	log.InfoContext(context.Background(), "reflected", "tables", 14)
	assert.Contains(t, buf.String(), "msg=reflected")
	assert.Contains(t, buf.String(), "tables=14")
	assert.Contains(t, buf.String(), "source=")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
