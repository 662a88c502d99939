package port

import (
	"context"
	"io"
)

// ObjectStore uploads blobs under opaque keys and resolves their public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	PublicURL(key string) string
}
