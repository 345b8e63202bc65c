package middleware

import (
	"net/http"

	clientRepo "salonflow/database/repository/client"
	"salonflow/utils"

	"github.com/gin-gonic/gin"
)

// ClientAuthMiddleware authenticates customer requests by token hash, going
// through the auth cache on repeat requests.
func ClientAuthMiddleware(repo clientRepo.ClientRepository, cache TokenCache) gin.HandlerFunc {
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
			if client, err := repo.GetByID(ctx, id); err == nil && client.TokenHash == hash {
				c.Set("clientID", client.ID)
				c.Next()
				return
			}
		}

		client, err := repo.GetByTokenHash(ctx, hash)
		if err != nil || client == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or client not found"})
			return
		}
		cacheID(ctx, cache, hash, client.ID)

		c.Set("clientID", client.ID)
		c.Next()
	}
}
