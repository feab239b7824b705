package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	dir := t.TempDir()
	cfg := Default(dir)
	if cfg.BasePath() != dir {
		t.Fatalf("expected base path %s, got %s", dir, cfg.BasePath())
	}
	if cfg.Storage != BackendDisk {
		t.Fatalf("expected diskv storage, got %s", cfg.Storage)
	}
	if cfg.Journal.Debounce != time.Second {
		t.Fatalf("expected 1s debounce, got %v", cfg.Journal.Debounce)
	}
	if cfg.Engine.MinPhase != time.Second || cfg.Engine.MaxPhase != 10*time.Second {
		t.Fatalf("unexpected phase bounds %v..%v", cfg.Engine.MinPhase, cfg.Engine.MaxPhase)
	}
	if cfg.Log.File != filepath.Join(dir, "calm.log") {
		t.Fatalf("unexpected log file %s", cfg.Log.File)
	}
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
path: ` + filepath.Join(dir, "db") + `
storage: sqlite
journal:
  debounce: 250ms
  require_text: true
engine:
  pattern: "478"
log:
  file: "-"
`)
	if err := os.WriteFile(filepath.Join(dir, ".calm.yaml"), data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CALM_CONFIG_PATH", dir)
	t.Setenv("CALM_ENGINE_MAX_PHASE", "12s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != BackendSQLite {
		t.Fatalf("expected sqlite, got %s", cfg.Storage)
	}
	if cfg.Journal.Debounce != 250*time.Millisecond || !cfg.Journal.RequireText {
		t.Fatalf("unexpected journal config %+v", cfg.Journal)
	}
	if cfg.Engine.Pattern != "478" {
		t.Fatalf("unexpected pattern %q", cfg.Engine.Pattern)
	}
	if cfg.Engine.MaxPhase != 12*time.Second {
		t.Fatalf("expected env override of max phase, got %v", cfg.Engine.MaxPhase)
	}
	if cfg.Log.File != "-" {
		t.Fatalf("expected stderr logging, got %q", cfg.Log.File)
	}
}

func TestLoadConfigRejectsUnknownStorage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".calm.yaml"), []byte("storage: floppy\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CALM_CONFIG_PATH", dir)
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}
