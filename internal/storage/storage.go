package storage

import (
	"context"
	"fmt"
)

// Backend selects the blob store implementation. Fixed at construction;
// there is no runtime switch between backends.
type Backend string

const (
	BackendS3 Backend = "s3"
	BackendFS Backend = "fs"
)

// Config carries everything needed to construct a blob store. Bucket and
// ProjectID are always required; LocalDir only for the fs backend.
type Config struct {
	Bucket    string
	ProjectID string
	Backend   Backend // s3|fs, default s3
	LocalDir  string

	// S3-compatible endpoints (AWS, MinIO, ...).
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
}

// New validates cfg and constructs the store for the configured backend.
// Validation failures are reported before any filesystem or network I/O
// happens.
func New(ctx context.Context, cfg Config) (BlobStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket name is required")
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("storage: project id is required")
	}
	switch cfg.Backend {
	case BackendFS:
		if cfg.LocalDir == "" {
			return nil, fmt.Errorf("storage: local dir is required for the %q backend", BackendFS)
		}
		return NewFSStore(cfg.LocalDir, cfg.Bucket)
	case BackendS3, "":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("storage: unsupported backend: %q", cfg.Backend)
	}
}
