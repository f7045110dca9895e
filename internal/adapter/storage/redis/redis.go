package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/config"
	"github.com/moto-tn/catalog-service/internal/port/storage"
)

type Storage struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisClient(cfg *config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Address, err)
	}
	logger.Info("Successfully connected to Redis", zap.String("address", cfg.Address))
	return rdb, nil
}

func NewStorage(client *redis.Client, logger *zap.Logger) storage.Store {
	return &Storage{client: client, logger: logger}
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		s.logger.Error("Redis Get operation failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("redis.Storage.Load for key '%s': %w", key, err)
	}
	return val, nil
}

func (s *Storage) Save(ctx context.Context, key string, value []byte) error {
	// Documents live until explicitly overwritten; no TTL.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Error("Redis Set operation failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redis.Storage.Save for key '%s': %w", key, err)
	}
	return nil
}
