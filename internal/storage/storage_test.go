package storage

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testWorlds(t *testing.T) *Worlds {
	t.Helper()
	return NewWorlds(t.TempDir(), 4, time.Minute, testLogger())
}
