// Package file is a storage.Store backed by one JSON file per key under a
// data directory. It is the default backend for local and single-node runs.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moto-tn/catalog-service/internal/port/storage"
)

type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file.NewStorage: create dir %s: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("file.Storage.Load key %q: %w", key, err)
	}
	return data, nil
}

func (s *Storage) Save(_ context.Context, key string, value []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("file.Storage.Save key %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("file.Storage.Save key %q: %w", key, err)
	}
	return nil
}

func (s *Storage) path(key string) string {
	// Keys use ":" as a namespace separator; keep filenames flat.
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}
