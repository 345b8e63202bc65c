package handlers

import (
	"salonflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the process logger annotated with the request route and
// the authenticated actor, when one is set.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger().With(
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	)
	if id := c.GetString("staffID"); id != "" {
		logger = logger.With(zap.String("staffId", id))
	}
	if id := c.GetString("clientID"); id != "" {
		logger = logger.With(zap.String("clientId", id))
	}
	return logger
}
