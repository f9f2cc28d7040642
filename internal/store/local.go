package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes images to a directory on disk. The server exposes the
// directory at /uploads/projects/, so URL returns that public path.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the backing directory, used to mount the static file server.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Upload(_ context.Context, key string, data []byte, _ string) error {
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return fmt.Errorf("write image %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) URL(key string) string {
	return "/uploads/projects/" + key
}
