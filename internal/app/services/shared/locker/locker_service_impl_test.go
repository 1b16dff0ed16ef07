package locker

import (
	"context"
	"errors"
	"superadmin-service/internal/app/services/shared/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLockService(repo *mocks.RedisRepository) *lockService {
	return &lockService{redisRepo: repo, Log: zap.NewNop()}
}

func TestLockService_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquired returns the generated value", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "lock:key", mock.AnythingOfType("string"), 30*time.Second).Return(true, nil)

		acquired, value, err := newTestLockService(repo).TryLock(ctx, "lock:key", 30*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
		repo.AssertExpectations(t)
	})

	t.Run("held by someone else", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "lock:key", mock.Anything, time.Second).Return(false, nil)

		acquired, value, err := newTestLockService(repo).TryLock(ctx, "lock:key", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("redis failure", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "lock:key", mock.Anything, time.Second).Return(false, errors.New("down"))

		acquired, _, err := newTestLockService(repo).TryLock(ctx, "lock:key", time.Second)
		require.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestLockService_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("owner releases", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("DeleteIfEqual", ctx, "lock:key", "owner").Return(true, nil)

		require.NoError(t, newTestLockService(repo).Unlock(ctx, "lock:key", "owner"))
		repo.AssertExpectations(t)
	})

	t.Run("expired or foreign lock is left alone", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("DeleteIfEqual", ctx, "lock:key", "owner").Return(false, nil)

		require.NoError(t, newTestLockService(repo).Unlock(ctx, "lock:key", "owner"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("redis failure", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("DeleteIfEqual", ctx, "lock:key", "owner").Return(false, errors.New("down"))

		err := newTestLockService(repo).Unlock(ctx, "lock:key", "owner")
		require.Error(t, err)
	})
}
