package contracts

import (
	"context"
	"time"
)

// LockerService hands out short lived Redis locks. TryLock returns the value
// that proves ownership to Unlock.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
