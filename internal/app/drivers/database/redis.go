package database

import (
	"context"
	"fmt"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/pkg/utils"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to the Redis that holds wizard sessions and locks,
// retrying the ping while Redis is still starting.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    driverConfig.Redis.Password,
		DB:          driverConfig.Redis.DB,
		PoolSize:    driverConfig.Redis.PoolSize,
		DialTimeout: time.Duration(driverConfig.Redis.DialTimeoutInSeconds) * time.Second,
	})

	backoff := time.Duration(driverConfig.ConnectBackoffInSeconds) * time.Second
	err := utils.Retry(ctx, driverConfig.ConnectAttempts, backoff, func(ctx context.Context) error {
		err := rdb.Ping(ctx).Err()
		if err != nil {
			log.Warn("Redis is not reachable yet", zap.String("address", addr), zap.Error(err))
		}
		return err
	})
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	log.Info("Successfully connected to redis", zap.String("address", addr), zap.Int("db", driverConfig.Redis.DB))
	return rdb, nil
}
