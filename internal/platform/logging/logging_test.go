package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_NilContext(t *testing.T) {
	logger := FromContext(nil) //nolint:staticcheck // Testing nil guard intentionally
	assert.NotNil(t, logger)
	assert.Equal(t, defaultLogger, logger)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	assert.Equal(t, defaultLogger, logger)
}

func TestWithContext(t *testing.T) {
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), customLogger)
	assert.Equal(t, customLogger, FromContext(ctx))
}

func TestWithCommandID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), logger)
	ctx = WithCommandID(ctx, "cmd-123")

	FromContext(ctx).InfoContext(ctx, "test message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "cmd-123", logEntry["command_id"])
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{
		Level:   "info",
		Format:  "json",
		Service: "test-service",
		Version: "1.0.0",
	}

	logger := NewWithWriter(cfg, &buf)
	require.NotNil(t, logger)

	logger.Info("test message", slog.String("key", "value"))

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "test-service", logEntry["service_name"])
	assert.Equal(t, "1.0.0", logEntry["service_version"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{
		Level:   "debug",
		Format:  "text",
		Service: "test-service",
		Version: "1.0.0",
	}

	logger := NewWithWriter(cfg, &buf)
	logger.Debug("debug message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "test-service")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{
		Level:   "info",
		Format:  "pretty",
		Service: "test-service",
		Version: "1.0.0",
	}

	logger := NewWithWriter(cfg, &buf)
	logger.Info("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
}

func TestNewWithWriter_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{
		Level:  "info",
		Format: "json",
	}

	logger := NewWithWriter(cfg, &buf)
	logger.Info("login", slog.String("password", "hunter2"))

	assert.NotContains(t, buf.String(), "hunter2")
}

func TestNewWithWriter_WithFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	logFile := filepath.Join(tmpDir, "test.log")

	var buf bytes.Buffer
	cfg := &Config{
		Level:   "info",
		Format:  "json",
		Service: "test-service",
		Version: "1.0.0",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}

	logger := NewWithWriter(cfg, &buf)
	logger.Info("test message to file")

	// Terminal sink
	assert.Contains(t, buf.String(), "test message to file")

	// File sink
	require.FileExists(t, logFile)
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "test message to file")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
	)

	logger := slog.New(handler).With(slog.String("component", "test"))
	logger.Info("fan out")

	assert.Contains(t, a.String(), "fan out")
	assert.Contains(t, b.String(), "fan out")
	assert.Contains(t, a.String(), "component")
}

func TestMultiHandler_Enabled(t *testing.T) {
	quiet := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	chatty := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})

	h := NewMultiHandler(quiet, chatty)
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	onlyQuiet := NewMultiHandler(quiet)
	assert.False(t, onlyQuiet.Enabled(context.Background(), slog.LevelInfo))
}
