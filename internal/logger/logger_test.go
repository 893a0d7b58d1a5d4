package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := SetupWriter(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)

	WithGameID(log, "abc").Info("Processed command", "verb", "take")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Processed command", entry["msg"])
	assert.Equal(t, "abc", entry["game_id"])
	assert.Equal(t, "take", entry["verb"])
}

func TestSetupWriter_DevelopmentIsTextAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := SetupWriter(&config.Config{Environment: "development", LogLevel: slog.LevelWarn}, &buf)

	log.Info("hidden")
	WithError(log, errors.New("boom")).Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "error=boom")
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")
	log, closer, err := SetupFile(&config.Config{LogLevel: slog.LevelInfo}, path)
	require.NoError(t, err)

	WithRequestID(log, "r1").Info("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "request_id=r1"))
}
