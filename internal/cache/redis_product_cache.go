package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/redissvc"
	"github.com/jimlawless/whereami"
)

const productKeyPrefix = "product:"

type RedisProductCache struct {
	rs     *redissvc.RedisService
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisProductCache(rs *redissvc.RedisService, ttl time.Duration, log logger.Logger) *RedisProductCache {
	return &RedisProductCache{rs: rs, ttl: ttl, logger: log}
}

// GetProducts reads all ids with a single MGET. Corrupt or mismatched entries
// are dropped and treated as misses.
func (c *RedisProductCache) GetProducts(ctx context.Context, ids []int64) map[int64]models.Product {
	result := make(map[int64]models.Product, len(ids))
	if len(ids) == 0 {
		return result
	}

	keys := productKeys(ids)
	values, err := c.rs.Rdb().MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warnf("redis MGET failed: %s: %v", whereami.WhereAmI(), err)
		return result
	}

	var stale []string
	for i, val := range values {
		data, ok := redisValueToBytes(val)
		if !ok {
			continue
		}

		var p models.Product
		if err := json.Unmarshal(data, &p); err != nil || p.ID != ids[i] {
			c.logger.Warnf("dropping unreadable cache entry %s", keys[i])
			stale = append(stale, keys[i])
			continue
		}
		result[ids[i]] = p
	}

	if len(stale) > 0 {
		if err := c.rs.Rdb().Del(ctx, stale...).Err(); err != nil {
			c.logger.Warnf("redis DEL failed: %s: %v", whereami.WhereAmI(), err)
		}
	}
	return result
}

// SetProducts writes every product in one pipeline with the configured TTL.
func (c *RedisProductCache) SetProducts(ctx context.Context, products []models.Product) {
	if len(products) == 0 {
		return
	}

	pipe := c.rs.Rdb().Pipeline()
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			c.logger.Warnf("failed to marshal product %d for cache: %v", p.ID, err)
			continue
		}
		pipe.Set(ctx, productKey(p.ID), data, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warnf("redis pipeline failed: %s: %v", whereami.WhereAmI(), err)
	}
}

func (c *RedisProductCache) DeleteProducts(ctx context.Context, ids ...int64) {
	if len(ids) == 0 {
		return
	}
	if err := c.rs.Rdb().Del(ctx, productKeys(ids)...).Err(); err != nil {
		c.logger.Warnf("redis DEL failed: %s: %v", whereami.WhereAmI(), err)
	}
}

func productKey(id int64) string {
	return fmt.Sprintf("%s%d", productKeyPrefix, id)
}

func productKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}
	return keys
}

// redisValueToBytes converts one MGET slot. nil means a miss.
func redisValueToBytes(val any) ([]byte, bool) {
	switch v := val.(type) {
	case string:
		return []byte(v), true
	case []byte:
		return v, true
	default:
		return nil, false
	}
}
