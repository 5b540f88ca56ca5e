package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FSStore keeps blobs as plain files under <base>/<bucket>/<key>.
type FSStore struct {
	base   string
	bucket string
}

// NewFSStore resolves base to an absolute path and creates it (including
// parents) if missing.
func NewFSStore(base, bucket string) (*FSStore, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: abs, bucket: bucket}, nil
}

func (s *FSStore) Upload(ctx context.Context, data []byte, key string) error {
	if key == "" {
		return errors.New("storage: empty key")
	}
	dir := filepath.Join(s.base, s.bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filepath.Clean(key)), data, 0o644)
}

func (s *FSStore) Download(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.base, s.bucket, filepath.Clean(key)))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("storage: %q: %w", key, ErrNotFound)
	}
	return data, err
}
