package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
)

// MinioStore implements Store using a MinIO (or S3-compatible) backend.
type MinioStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// MinioConfig holds the settings for the MinIO object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
	// PublicBase is the externally reachable URL prefix for stored objects.
	// Empty means objects are addressed through the endpoint itself.
	PublicBase string
}

// NewMinioStore creates a new MinIO-backed object store and ensures the
// bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	publicBase := cfg.PublicBase
	if publicBase == "" {
		scheme := "http"
		if cfg.Secure {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MinioStore{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// Put stores an object and returns its public URL.
func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to store object", "bucket", s.bucket, "key", key, "error", err)
		return "", fmt.Errorf("failed to store object: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.publicBase, s.bucket, key)
	logger.InfoContext(ctx, "stored object", "bucket", s.bucket, "key", key, "size", size, "content_type", contentType)
	return url, nil
}
