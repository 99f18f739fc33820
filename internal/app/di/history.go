package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	historyadapters "opticode_backend/internal/feature/history/adapters"
	"opticode_backend/internal/feature/history/adapters/cache"
	"opticode_backend/internal/feature/history/usecase"
)

// statsCacheTTL bounds how stale the cached profile stats can get.
const statsCacheTTL = 5 * time.Minute

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, stats reads are served through a cache.
// Otherwise, every call goes straight to the database.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	repo := historyadapters.NewSessionGorm(db)
	if rdb != nil {
		return cache.NewCachingSessionRepository(rdb, statsCacheTTL, repo, "stats")
	}
	return repo
}
