package log

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"braces.dev/errtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/typevault/errors"
)

func TestNew(t *testing.T) {
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, format, false)
			require.NoError(t, err)

			logger.Warn("rejected", slog.Any("error", errors.OutOfRange("alpha", 0, 100)))
			assert.Contains(t, buf.String(), "rejected")
			assert.Contains(t, buf.String(), "OUT_OF_RANGE")
			assert.Contains(t, buf.String(), "alpha")
		})
	}
}

func TestNewWrappedValidationError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, FormatConsole, false)
	require.NoError(t, err)

	wrapped := errtrace.Wrap(fmt.Errorf("set red: %w", errors.OutOfRange("red", 0, 255)))
	logger.Warn("rejected", slog.Any("error", wrapped))
	assert.Contains(t, buf.String(), "OUT_OF_RANGE")
	assert.Contains(t, buf.String(), "red")
}

func TestNewPlainError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, FormatConsole, false)
	require.NoError(t, err)

	logger.Warn("failed", slog.Any("error", fmt.Errorf("disk full")))
	assert.Contains(t, buf.String(), "disk full")
	assert.NotContains(t, buf.String(), "OUT_OF_RANGE")
}

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, FormatConsole, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger, err = New(&buf, FormatConsole, true)
	require.NoError(t, err)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewUnknownFormat(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, Format("json"), false)
	require.Error(t, err)
	assert.Nil(t, logger)
}

func TestNoop(t *testing.T) {
	assert.False(t, Noop.Enabled(context.Background(), slog.LevelError))
	Noop.Error("dropped")
}
