package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler catches panics escaping the handler chain and answers with
// the same {error, kind} body the handlers use for engine rejections.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("handler panicked",
					zap.String("method", c.Request.Method),
					zap.String("path", c.FullPath()),
					zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
					"kind":  "internal",
				})
			}
		}()
		c.Next()
	}
}
