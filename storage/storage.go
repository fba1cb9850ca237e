// Package storage provides object storage for uploaded post images.
package storage

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

// ObjectStorage is the capability controllers depend on; production
// uses S3, tests use the in-memory stub.
type ObjectStorage interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ObjectKey builds a collision-free key, keeping the original extension
// so the served file gets a sensible content type.
func ObjectKey(filename string) string {
	return uuid.NewString() + filepath.Ext(filename)
}
