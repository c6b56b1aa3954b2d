package storage

import (
	"context"
	"io"
	"time"
)

// AnexoRepository defines the interface for attachment storage operations.
// Implementations persist opaque binary payloads under a caller-chosen key
// and resolve retrievable URLs for stored objects.
type AnexoRepository interface {
	Upload(ctx context.Context, objectKey string, data io.Reader, contentType string, size int64) error
	Delete(ctx context.Context, objectKey string) error
	URLFor(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
