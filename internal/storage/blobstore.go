package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BlobStore stores post images and resolves their public URLs
type BlobStore interface {
	Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error
	PublicURL(objectName string) string
}

type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Bucket        string
	PublicBaseURL string // overrides the endpoint-derived URL when set
}

// MinioStore implements BlobStore against an S3-compatible object store
type MinioStore struct {
	cfg    Config
	client *minio.Client
}

// NewMinioStore creates a MinioStore for the configured bucket
func NewMinioStore(cfg Config) (*MinioStore, error) {
	cl, err := minio.New(strings.TrimPrefix(cfg.Endpoint, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStore{cfg: cfg, client: cl}, nil
}

// EnsureBucket creates the bucket if it does not exist yet
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// Upload stores an object in the bucket
func (s *MinioStore) Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// PublicURL resolves the public URL of an uploaded object. The bucket is
// expected to allow anonymous reads, matching a hosted store's public bucket.
func (s *MinioStore) PublicURL(objectName string) string {
	if s.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.cfg.PublicBaseURL, "/"), objectName)
	}
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, objectName)
}

// BuildObjectName derives a collision-resistant object name from the original
// file name: millisecond timestamp plus a random suffix, extension preserved.
func BuildObjectName(originalName string) string {
	ext := filepath.Ext(originalName)
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
