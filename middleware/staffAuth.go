package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	staffRepo "salonflow/database/repository/staff"
	"salonflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// TokenCache caches token-hash to account-id lookups so repeat requests
// skip the token-hash scan. *redis.Client satisfies it; nil disables
// caching.
type TokenCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// StaffAuthMiddleware authenticates staff requests. The bearer token must be
// a valid JWT whose hash still matches the stored session hash, so a staff
// member holds at most one live session. The hash is re-checked against the
// store even on a cache hit, keeping revocation immediate.
func StaffAuthMiddleware(repo staffRepo.StaffRepository, cache TokenCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := c.Request.Context()
		hash := utils.HashToken(tokenString)

		if id, err := cachedID(ctx, cache, hash); err == nil {
			if staff, err := repo.GetByID(ctx, id); err == nil && staff.Active && staff.TokenHash == hash {
				c.Set("staffID", staff.ID)
				c.Next()
				return
			}
		}

		staff, err := repo.GetByTokenHash(ctx, hash)
		if err != nil || staff == nil || !staff.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or staff member not found"})
			return
		}
		cacheID(ctx, cache, hash, staff.ID)

		c.Set("staffID", staff.ID)
		c.Next()
	}
}

func cachedID(ctx context.Context, cache TokenCache, hash string) (string, error) {
	if cache == nil {
		return "", redis.Nil
	}
	return cache.Get(ctx, utils.AuthCachePrefix+hash).Result()
}

func cacheID(ctx context.Context, cache TokenCache, hash, id string) {
	if cache != nil {
		cache.Set(ctx, utils.AuthCachePrefix+hash, id, utils.AuthCacheTTL)
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}
