package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	istorage "github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// consoleEnv points the console's log and save files at a temp dir and returns the save path.
func consoleEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	boltPath := filepath.Join(dir, "saves.db")
	t.Setenv("BOLT_PATH", boltPath)
	t.Setenv("LOG_FILE", filepath.Join(dir, "console.log"))
	t.Setenv("DATA_DIR", dir)
	return boltPath
}

func TestRun_ListSaves(t *testing.T) {
	consoleEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-saves"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "No saved games.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_PlainGame(t *testing.T) {
	consoleEnv(t)
	var stdout, stderr bytes.Buffer
	in := strings.NewReader("examine shovel\ntake shovel\nquit\n")

	code := run([]string{"-plain"}, in, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Welcome to Dunnet!")
	assert.Contains(t, stdout.String(), "+-+", "examine shows the item's art")
	assert.Contains(t, stdout.String(), "You take the shovel.")
	assert.Contains(t, stdout.String(), "Thanks for playing!")
}

func TestRun_ErrorsReleaseSaveFile(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "invalid save id", args: []string{"-resume", "not-a-uuid"}, wantCode: 1, wantErr: "invalid save id"},
		{name: "unknown world", args: []string{"-world", "zork", "-plain"}, wantCode: 1, wantErr: "zork"},
		{name: "unknown flag", args: []string{"-colour"}, wantCode: 2, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boltPath := consoleEnv(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr.String(), tt.wantErr)

			// bolt holds an exclusive lock until closed, so reopening fails if cleanup was skipped.
			log := testLogger()
			saves, err := istorage.NewBoltStorage(boltPath, istorage.NewWorlds(t.TempDir(), 4, time.Minute, log), log)
			require.NoError(t, err)
			require.NoError(t, saves.Close())
		})
	}
}
