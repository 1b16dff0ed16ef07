package contracts

import (
	"context"
	"io"
	"time"
)

// StorageObject is one upload. Size may be -1 when unknown.
type StorageObject struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Storage interface {
	PutObject(ctx context.Context, bucketName string, object StorageObject) (string, error)
	PresignGet(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}
