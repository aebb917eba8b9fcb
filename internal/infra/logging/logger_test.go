package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info(1, "task", "test message")

	content, err := os.ReadFile(filepath.Join(dataDir, "logs", "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[task-1]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "test message")

	taskContent, err := os.ReadFile(filepath.Join(dataDir, "logs", "task-1.log"))
	require.NoError(t, err)
	assert.Contains(t, string(taskContent), "test message")
}

func TestLogger_GlobalOnly(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info(0, "app", "global message")

	content, err := os.ReadFile(filepath.Join(dataDir, "logs", "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[global]")

	_, err = os.Stat(filepath.Join(dataDir, "logs", "task-0.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug(0, "app", "dropped")
	logger.Info(0, "app", "also dropped")
	logger.Warn(0, "app", "kept")

	content, err := os.ReadFile(filepath.Join(dataDir, "logs", "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "dropped")
	assert.Contains(t, string(content), "kept")
}

func TestLogger_DisabledWithoutDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	// Must not panic or create anything.
	logger.Info(3, "task", "ignored")
	assert.NoError(t, logger.Close())
}
