package services

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FileService serves the shared report and template files (the legacy
// public/ directory) out of an object storage bucket.
type FileService interface {
	EnsureBucketExists(ctx context.Context, bucketName string) error
	Upload(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error
	Fetch(ctx context.Context, bucketName, objectName string) ([]byte, string, error)
}

type minioFileService struct {
	client *minio.Client
}

func NewMinioFileService(endpoint, accessKey, secretKey string, useSSL bool) (FileService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioFileService{client: client}, nil
}

func (m *minioFileService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	found, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	}
	return nil
}

func (m *minioFileService) Upload(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Fetch returns the object bytes and its stored content type. A missing
// object maps to ErrNotFound so handlers can answer 404.
func (m *minioFileService) Fetch(ctx context.Context, bucketName, objectName string) ([]byte, string, error) {
	obj, err := m.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", err
	}
	return data, stat.ContentType, nil
}
