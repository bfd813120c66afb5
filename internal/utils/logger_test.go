package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {

	t.Run("default logger", func(t *testing.T) {
		logger := NewDefaultLogger()
		require.NotNil(t, logger)
	})

	t.Run("custom output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "json",
			Output: &buf,
		})
		require.NotNil(t, logger)
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
	})

	t.Run("pretty format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "pretty",
			Output: &buf,
		})
		require.NotNil(t, logger)
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
	})

	t.Run("verbose option", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:   "info",
			Format:  "json",
			Output:  &buf,
			Verbose: true,
		})
		require.NotNil(t, logger)
		// Verbose should enable debug level
		logger.Debug().Msg("debug test")
		assert.Contains(t, buf.String(), "debug test")
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "error",
			Format: "json",
			Output: &buf,
		})
		logger.Info().Msg("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestLoggerWithComponent(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	componentLogger := logger.WithComponent("fetcher")
	require.NotNil(t, componentLogger)

	componentLogger.Info().Msg("test message")
	output := buf.String()
	assert.Contains(t, output, "fetcher")
	assert.Contains(t, output, "test message")
}

func TestLoggerWithURL(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	urlLogger := logger.WithURL("https://example.com/west.yml")
	require.NotNil(t, urlLogger)

	urlLogger.Info().Msg("fetched")
	output := buf.String()
	assert.Contains(t, output, "https://example.com/west.yml")
}

func TestLoggerWithPath(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	pathLogger := logger.WithPath("devices/mcx.yml")
	require.NotNil(t, pathLogger)

	pathLogger.Info().Msg("classified")
	output := buf.String()
	assert.Contains(t, output, "devices/mcx.yml")
	assert.Contains(t, output, "classified")
}
