// Package cache provides a Redis caching decorator for the session repository.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"opticode_backend/internal/feature/history/domain/entity"
	"opticode_backend/internal/feature/history/usecase"
)

// CachingSessionRepository decorates a SessionRepository with Redis caching of
// the per-owner stats aggregate. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
// Write operations that change the aggregate invalidate the owner's entry.
type CachingSessionRepository struct {
	inner     usecase.SessionRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies SessionRepository.
var _ usecase.SessionRepository = (*CachingSessionRepository)(nil)

// NewCachingSessionRepository decorates a SessionRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "stats".
func NewCachingSessionRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SessionRepository, namespace string) *CachingSessionRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "stats"
	}
	return &CachingSessionRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Save persists through the inner repository and invalidates the owner's
// cached stats.
func (c *CachingSessionRepository) Save(ctx context.Context, s *entity.OptimizationSession) error {
	if err := c.inner.Save(ctx, s); err != nil {
		return err
	}
	c.invalidate(ctx, s.OwnerID)
	return nil
}

// ListByOwner passes through; listings are not cached.
func (c *CachingSessionRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error) {
	return c.inner.ListByOwner(ctx, ownerID)
}

// Delete passes through and invalidates the owner's cached stats when a row
// was actually removed.
func (c *CachingSessionRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	deleted, err := c.inner.Delete(ctx, id, ownerID)
	if err != nil {
		return false, err
	}
	if deleted {
		c.invalidate(ctx, ownerID)
	}
	return deleted, nil
}

// Rename passes through. A rename never changes the aggregate, so the cache
// entry stays valid.
func (c *CachingSessionRepository) Rename(ctx context.Context, id, ownerID, newName string) (bool, error) {
	return c.inner.Rename(ctx, id, ownerID, newName)
}

// ToggleStar passes through and invalidates the owner's cached stats.
func (c *CachingSessionRepository) ToggleStar(ctx context.Context, id, ownerID string) (bool, error) {
	starred, err := c.inner.ToggleStar(ctx, id, ownerID)
	if err != nil {
		return false, err
	}
	c.invalidate(ctx, ownerID)
	return starred, nil
}

// Stats retrieves the aggregate, checking cache first then falling back to
// the database.
func (c *CachingSessionRepository) Stats(ctx context.Context, ownerID string) (*entity.Stats, error) {
	if c.rdb == nil {
		return c.inner.Stats(ctx, ownerID)
	}

	key := c.cacheKey(ownerID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Stats
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Stats(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops the owner's cached stats entry. Best effort: a failed
// delete only means a stale read until the TTL expires.
func (c *CachingSessionRepository) invalidate(ctx context.Context, ownerID string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(ownerID)).Err()
}

// cacheKey generates the cache key for one owner's stats.
func (c *CachingSessionRepository) cacheKey(ownerID string) string {
	return fmt.Sprintf("%s:%s", c.namespace, ownerID)
}
