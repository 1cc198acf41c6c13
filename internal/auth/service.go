package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/infocomm/inventory-backend/internal/redissvc"
)

// Revoker tracks access tokens invalidated before their expiry (logout).
type Revoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const revokedKeyPrefix = "auth:revoked:"

// RedisRevoker stores revoked token ids until they would have expired anyway.
type RedisRevoker struct {
	rs *redissvc.RedisService
}

func NewRedisRevoker(rs *redissvc.RedisService) *RedisRevoker {
	return &RedisRevoker{rs: rs}
}

func (r *RedisRevoker) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := r.rs.Rdb().Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.rs.Rdb().Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// MemoryRevoker is the Revoker used when Redis is disabled. Entries are
// dropped lazily once expired.
type MemoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{revoked: map[string]time.Time{}}
}

func (r *MemoryRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.revoked[jti] = until
	return nil
}

func (r *MemoryRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	until, ok := r.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(r.revoked, jti)
		return false, nil
	}
	return true, nil
}
