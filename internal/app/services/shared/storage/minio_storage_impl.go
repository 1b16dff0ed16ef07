package storage

import (
	"context"
	"io"
	"net/url"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

// objectStore is the part of *minio.Client the storage uses.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// Logos are addressed by uuid and never rewritten.
const logoCacheControl = "public, max-age=31536000, immutable"

type minioStorage struct {
	MinioClient objectStore
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName string, object contracts.StorageObject) (string, error) {
	info, err := m.MinioClient.PutObject(ctx, bucketName, object.Name, object.Body, object.Size, minio.PutObjectOptions{
		ContentType:  object.ContentType,
		CacheControl: logoCacheControl,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return info.Key, nil
}

func (m *minioStorage) PresignGet(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}
