package logging

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "nonsense", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "warn", Format: FormatJSON}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "info", Format: FormatConsole}, &buf)

	logger.Info().Str("page", "3").Msg("navigated")

	assert.Contains(t, buf.String(), "navigated")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Caller = true

	logger := NewLogger(cfg, &buf)
	logger.Info().Msg("with caller")

	assert.Contains(t, buf.String(), `"caller":`)
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(NewLogger(DefaultConfig(), &buf), "tui")

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"tui"`)
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("stderr", func(t *testing.T) {
		result := NewLoggerWithPath(DefaultConfig())
		assert.False(t, result.UsingFile)
		assert.False(t, result.FallbackUsed)
		assert.NoError(t, result.Close())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pagewindow.log")
		result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)

		result.Logger.Info().Msg("to file")
		require.NoError(t, result.Close())
		require.NoError(t, result.Close(), "close is idempotent")
	})

	t.Run("fallback", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "pagewindow.log")
		result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26)

	ctx = ContextWithTraceID(ctx, "trace-123")
	assert.Equal(t, "trace-123", GetOrGenerateTraceID(ctx))
}

func TestTraceHook(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(DefaultConfig(), &buf)
	ctx := ContextWithTraceID(context.Background(), "trace-abc")

	logger.Info().Ctx(ctx).Msg("with trace")

	assert.Contains(t, buf.String(), `"trace_id":"trace-abc"`)
}
