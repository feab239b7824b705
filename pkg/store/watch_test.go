package store

import (
	"context"
	"testing"
	"time"
)

func TestDiskWatchEmitsKeyChanges(t *testing.T) {
	p, err := OpenDisk(t.TempDir())
	if err != nil {
		t.Fatalf("open disk: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Set("journalEntries", `{"version":1,"entries":[]}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if evt.Invalidated {
				continue
			}
			if evt.Key != "journalEntries" {
				t.Fatalf("expected key journalEntries, got %q", evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestKeyForPathIgnoresTempFiles(t *testing.T) {
	p := &Disk{basePath: "/data"}
	tests := map[string]string{
		"/data/journalEntries":   "journalEntries",
		"/data/.tmp/diskv-12345": "",
		"/data/.tmp":             "",
		"/data":                  "",
	}
	for path, want := range tests {
		if got := p.keyForPath(path); got != want {
			t.Errorf("keyForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
