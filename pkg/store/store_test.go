package store

import (
	"path/filepath"
	"testing"

	"tableflip.dev/calm/pkg/config"
)

func backends(t *testing.T) map[string]Persistence {
	t.Helper()
	disk, err := OpenDisk(t.TempDir())
	if err != nil {
		t.Fatalf("open disk: %v", err)
	}
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "calm.sqlite"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Persistence{
		"disk":   disk,
		"sqlite": db,
		"memory": NewMemory(),
	}
}

func TestBackendsRoundTrip(t *testing.T) {
	for name, p := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := p.Get("currentJournalEntry"); err != nil || ok {
				t.Fatalf("Get on empty store = ok %v err %v", ok, err)
			}
			if err := p.Set("currentJournalEntry", "first"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := p.Set("currentJournalEntry", "second"); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			got, ok, err := p.Get("currentJournalEntry")
			if err != nil || !ok || got != "second" {
				t.Fatalf("Get = %q %v %v, want second", got, ok, err)
			}
			if err := p.Delete("currentJournalEntry"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, ok, _ := p.Get("currentJournalEntry"); ok {
				t.Fatal("key still present after Delete")
			}
			if err := p.Delete("currentJournalEntry"); err != nil {
				t.Fatalf("Delete of missing key: %v", err)
			}
		})
	}
}

func TestDiskSurvivesReopen(t *testing.T) {
	base := t.TempDir()
	p, err := OpenDisk(base)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := p.Set("journalEntries", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	again, err := OpenDisk(base)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got, ok, _ := again.Get("journalEntries"); !ok || got != "[]" {
		t.Fatalf("reopened Get = %q %v", got, ok)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		config.BackendDisk:   "*store.Disk",
		config.BackendSQLite: "*store.SQLite",
		config.BackendMemory: "*store.Memory",
	}
	for backend, want := range tests {
		cfg := config.Default(filepath.Join(dir, backend))
		cfg.Storage = backend
		p, err := Open(cfg)
		if err != nil {
			t.Fatalf("Open(%s): %v", backend, err)
		}
		if got := typeName(p); got != want {
			t.Errorf("Open(%s) = %s, want %s", backend, got, want)
		}
		_ = p.Close()
	}
}

func typeName(p Persistence) string {
	switch p.(type) {
	case *Disk:
		return "*store.Disk"
	case *SQLite:
		return "*store.SQLite"
	case *Memory:
		return "*store.Memory"
	}
	return "unknown"
}
