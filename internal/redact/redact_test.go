package redact_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/phrazzld/fortune/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "This is a normal log message",
			expected: "This is a normal log message",
		},
		{
			name:     "calendar date",
			input:    `invalid birthday: got "1990-01-15"`,
			expected: `invalid birthday: got "[REDACTED_DATE]"`,
		},
		{
			name:     "single digit month and day",
			input:    "born 1990-1-5",
			expected: "born [REDACTED_DATE]",
		},
		{
			name:     "timestamp",
			input:    "stored value 1990-01-14T17:00:00.000Z could not be read",
			expected: "stored value [REDACTED_DATE] could not be read",
		},
		{
			name:     "timestamp with offset",
			input:    "at 1990-01-15T00:00:00+07:00",
			expected: "at [REDACTED_DATE]",
		},
		{
			name:     "unix path",
			input:    "open /home/somchai/.config/fortune/birthday.yaml: permission denied",
			expected: "open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "windows path",
			input:    `open C:\Users\somchai\AppData\fortune\birthday.yaml failed`,
			expected: "open [REDACTED_PATH] failed",
		},
		{
			name:     "email address",
			input:    "config owned by somchai@example.com",
			expected: "config owned by [REDACTED_EMAIL]",
		},
		{
			name:     "numbers that are not dates",
			input:    "life path 8, daily number 99",
			expected: "life path 8, daily number 99",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", redact.Error(nil))
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New(`expected YYYY-MM-DD: got "1990-02-30"`)
		wrapped := fmt.Errorf("stored birthday is corrupt: %w", inner)
		assert.Equal(t,
			`stored birthday is corrupt: expected YYYY-MM-DD: got "[REDACTED_DATE]"`,
			redact.Error(wrapped))
	})
}

func TestAttr(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: redact.Attr}))

	l.Info("birthday saved",
		"birthday", "1990-01-15",
		"today", "2026-10-18",
		"error", errors.New("open /tmp/fortune/birthday.yaml: no space left"))

	out := buf.String()
	assert.Contains(t, out, "birthday=[REDACTED_DATE]")
	assert.Contains(t, out, "today=2026-10-18")
	assert.Contains(t, out, `error="open [REDACTED_PATH]: no space left"`)
	assert.NotContains(t, out, "1990-01-15")
}

func TestAttrRedactsPaths(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: redact.Attr}))

	l.Info("configuration loaded",
		"path", "/home/somchai/.config/fortune/birthday.yaml",
		"store_path", "/home/somchai/.config/fortune/birthday.yaml",
		"format", "text")

	out := buf.String()
	assert.Contains(t, out, "path=[REDACTED_PATH]")
	assert.Contains(t, out, "store_path=[REDACTED_PATH]")
	assert.Contains(t, out, "format=text")
	assert.NotContains(t, out, "somchai")
}
