package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioOptions configures the campaign image store.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ImageStore keeps campaign images in a MinIO bucket and hands back their
// public URLs.
type ImageStore struct {
	client *minio.Client
	opts   MinioOptions
}

// NewImageStore creates the client and makes sure the bucket exists. Bucket
// errors are only logged, the store is still usable once MinIO comes up.
func NewImageStore(opts MinioOptions) (*ImageStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		log.Printf("Warning: Failed to check bucket existence: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Printf("Warning: Failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", opts.Bucket)
		}
	}

	log.Printf("Connected to MinIO at %s", opts.Endpoint)
	return &ImageStore{client: client, opts: opts}, nil
}

// Upload stores r under a fresh object name that keeps the original extension.
func (s *ImageStore) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	objectName := ObjectName(filename)

	_, err := s.client.PutObject(ctx, s.opts.Bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to storage: %w", err)
	}

	return s.URL(objectName), nil
}

// Ping checks that the bucket is reachable.
func (s *ImageStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.opts.Bucket)
	if err != nil {
		return fmt.Errorf("minio: %w", err)
	}
	if !exists {
		return fmt.Errorf("minio: bucket %q does not exist", s.opts.Bucket)
	}
	return nil
}

// URL is the public address of an object in the bucket.
func (s *ImageStore) URL(objectName string) string {
	scheme := "http"
	if s.opts.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.opts.Endpoint, s.opts.Bucket, objectName)
}

// ObjectName returns a random object key carrying filename's extension.
func ObjectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return uuid.NewString() + ext
}
