// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/fortune/internal/config"
	"github.com/phrazzld/fortune/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault resets the default slog logger after a test replaces it.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

// parseLogEntries parses every JSON line written to buf.
func parseLogEntries(t *testing.T, buf *logger.TestLogBuffer) []map[string]interface{} {
	t.Helper()
	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	return entries
}

func TestSetup(t *testing.T) {
	restoreDefault(t)

	l := logger.Setup(config.AppConfig{LogLevel: "info"}, &bytes.Buffer{})
	require.NotNil(t, l)
	assert.Equal(t, l, slog.Default())
}

func TestSetupRespectsLevel(t *testing.T) {
	restoreDefault(t)

	var buf logger.TestLogBuffer
	l := logger.Setup(config.AppConfig{LogLevel: "warn"}, &buf)

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	entries := parseLogEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "value", entries[0]["key"])
}

func TestSetupInvalidLevelDefaultsToInfo(t *testing.T) {
	restoreDefault(t)

	var buf logger.TestLogBuffer
	l := logger.Setup(config.AppConfig{LogLevel: "invalid_level"}, &buf)

	assert.Contains(t, buf.String(), "invalid log level configured")
	buf.Reset()

	l.Debug("hidden")
	l.Info("shown")
	entries := parseLogEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		level, ok := logger.ParseLevel(tt.name)
		assert.Equal(t, tt.want, level, "level %q", tt.name)
		assert.Equal(t, tt.valid, ok, "level %q", tt.name)
	}
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestWithTraceID(t *testing.T) {
	t.Parallel()

	var buf logger.TestLogBuffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, l := logger.WithTraceID(context.Background(), base, "abc123")
	l.Info("first")
	logger.FromContext(ctx).Info("second")

	entries := parseLogEntries(t, &buf)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "abc123", entry[logger.TraceIDKey])
	}
}

func TestSetupRedactsPersonalData(t *testing.T) {
	restoreDefault(t)

	var buf logger.TestLogBuffer
	l := logger.Setup(config.AppConfig{LogLevel: "debug"}, &buf)

	l.Info("birthday saved", "birthday", "1990-01-15", "today", "2026-10-18")

	logger.AssertLogField(t, &buf, "birthday", "[REDACTED_DATE]")
	logger.AssertLogField(t, &buf, "today", "2026-10-18")
	assert.NotContains(t, buf.String(), "1990-01-15")
}

func TestNewTestContext(t *testing.T) {
	ctx, buf := logger.NewTestContext(t)

	logger.FromContext(ctx).Debug("captured", "component", "test")

	logger.AssertLogContains(t, buf, "captured")
	logger.AssertLogField(t, buf, "component", "test")
}
