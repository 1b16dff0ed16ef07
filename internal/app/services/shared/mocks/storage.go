package mocks

import (
	"context"
	"superadmin-service/internal/app/contracts"
	"time"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) PutObject(ctx context.Context, bucketName string, object contracts.StorageObject) (string, error) {
	args := m.Called(ctx, bucketName, object)
	return args.String(0), args.Error(1)
}

func (m *Storage) PresignGet(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}
