package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "login_backend/internal/feature/auth/adapters"
	"login_backend/internal/feature/auth/usecase"
	"login_backend/internal/platform/cache"
)

// userCacheTTL bounds how long a FindByID result may be served from Redis.
// Users are immutable, so the TTL only limits memory usage, not staleness.
const userCacheTTL = 5 * time.Minute

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, FindByID lookups (the face login hot path) are served
// through a read-through cache. Otherwise the plain GORM repository is used.
func NewUserRepository(rdb *redis.Client, db *gorm.DB) usecase.UserRepository {
	repo := authadapters.NewUserGorm(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, userCacheTTL, repo, "users")
	}
	return repo
}
