package redissvc

import (
	"context"
	"fmt"

	"github.com/infocomm/inventory-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisService owns the shared Redis client.
type RedisService struct {
	rdb *redis.Client
}

// NewRedisService dials Redis and verifies the connection with a PING.
func NewRedisService(ctx context.Context, cfg config.RedisConfig) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisService{rdb: rdb}, nil
}

// FromClient wraps an existing client, e.g. one pointed at a test server.
func FromClient(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
