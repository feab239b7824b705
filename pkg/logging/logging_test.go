package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/calm/pkg/config"
)

func TestSetupWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := config.Default(t.TempDir())
	cfg.Log.Level = "debug"

	logger, closeFn, err := Setup(cfg)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Debug("phase advanced", "phase", "inhale")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "phase=inhale") {
		t.Fatalf("log file missing record: %q", data)
	}
	if filepath.Base(cfg.Log.File) != "calm.log" {
		t.Fatalf("log file = %s", cfg.Log.File)
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Log.Level = "chatty"
	if _, _, err := Setup(cfg); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
