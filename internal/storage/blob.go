package storage

import (
	"context"
	"errors"
)

// BlobStore is a uniform upload/download interface over a bucket of raw
// byte blobs, keyed by caller-chosen strings. Uploads to an existing key
// overwrite it; there is no versioning.
type BlobStore interface {
	Upload(ctx context.Context, data []byte, key string) error
	Download(ctx context.Context, key string) ([]byte, error)
}

// ErrNotFound is returned by Download when no blob exists for the key.
var ErrNotFound = errors.New("blob not found")
