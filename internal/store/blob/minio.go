package blob

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"fileshelf/internal/domain"
)

// MinioStore keeps one object per blob in a single bucket; the object
// name is the file id.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// MinioConfig holds connection settings for the MinIO backend.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioStore connects to MinIO and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, &domain.StorageError{Op: "create minio client", Err: err}
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, &domain.StorageError{Op: fmt.Sprintf("check bucket %s", cfg.Bucket), Err: err}
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, &domain.StorageError{Op: fmt.Sprintf("create bucket %s", cfg.Bucket), Err: err}
		}
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Put uploads content under the given id, overwriting any existing object.
func (s *MinioStore) Put(ctx context.Context, id string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, id, r, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return &domain.StorageError{Op: fmt.Sprintf("put blob %s", id), Err: err}
	}
	return nil
}

// Get opens the object for reading. Absence maps to NotFoundError.
func (s *MinioStore) Get(ctx context.Context, id string) (io.ReadCloser, error) {
	// StatObject first: GetObject defers the existence check until the
	// first read, which is too late to answer with a clean 404.
	if _, err := s.client.StatObject(ctx, s.bucket, id, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("blob %s not found", id)}
		}
		return nil, &domain.StorageError{Op: fmt.Sprintf("stat blob %s", id), Err: err}
	}

	obj, err := s.client.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, &domain.StorageError{Op: fmt.Sprintf("get blob %s", id), Err: err}
	}
	return obj, nil
}

// Delete removes the object. MinIO treats removing an absent key as a
// success, which matches the store contract.
func (s *MinioStore) Delete(ctx context.Context, id string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{}); err != nil {
		return &domain.StorageError{Op: fmt.Sprintf("delete blob %s", id), Err: err}
	}
	return nil
}
