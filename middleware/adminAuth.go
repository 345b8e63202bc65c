package middleware

import (
	"net/http"

	"salonflow/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware authenticates administrator requests. Admin tokens are
// JWTs carrying the admin role claim; there is no admin account store.
func AdminAuthMiddleware() gin.HandlerFunc {
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

		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		adminID, _ := utils.ExtractIDFromToken(tokenString)
		c.Set("adminID", adminID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
