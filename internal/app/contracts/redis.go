package contracts

import (
	"context"
	"time"
)

// RedisRepository stores JSON encoded values. Get returns "" for a missing
// key.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfEqual removes key only while it still holds value, atomically.
	DeleteIfEqual(ctx context.Context, key string, value interface{}) (bool, error)
}
