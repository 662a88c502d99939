// Package storage implements the object store port over any S3-compatible
// endpoint.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/triosart/storefront/internal/port"
)

type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinio wires an object store over the given bucket. baseURL is the
// public prefix served by the bucket, without a trailing slash.
func NewMinio(client *minio.Client, bucket, baseURL string) port.ObjectStore {
	return &MinioStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// EnsureBucket creates the bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("client.BucketExists: %w", err)
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("client.MakeBucket: %w", err)
	}

	return nil
}

func (s *MinioStore) Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("client.PutObject: %w", err)
	}

	return nil
}

func (s *MinioStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
}
