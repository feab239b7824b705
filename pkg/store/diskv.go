// Package store provides the durable key-value backends behind the journal:
// a diskv directory (the default), a SQLite file, and an in-memory map.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/calm/pkg/config"
)

// Persistence is a durable string key-value store.
type Persistence interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Open returns the backend selected by cfg.Storage.
func Open(cfg *config.Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch cfg.Storage {
	case config.BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.BasePath(), "calm.sqlite"))
	case config.BackendMemory:
		return NewMemory(), nil
	case "", config.BackendDisk:
		return OpenDisk(cfg.BasePath())
	}
	return nil, fmt.Errorf("store: unknown storage %q", cfg.Storage)
}

// Disk stores each key as a file under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

const tempDir = ".tmp"

// OpenDisk creates the base directory if needed.
func OpenDisk(basePath string) (*Disk, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Another process may write the same keys, so reads always go to
		// disk.
		CacheSizeMax: 0,
		TempDir:      filepath.Join(basePath, tempDir),
	}), basePath: basePath}, nil
}

func (p *Disk) Get(key string) (string, bool, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (p *Disk) Set(key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *Disk) Delete(key string) error {
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *Disk) Close() error {
	return nil
}

// BasePath is the directory holding the key files.
func (p *Disk) BasePath() string {
	return p.basePath
}

// keyToPathTransform maps "a/b" to the file b inside directory a.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName), "/")
}
