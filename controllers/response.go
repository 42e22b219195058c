package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError writes the common error body. Server errors are logged with
// the request's logger.
func respondError(c *gin.Context, status int, message string, err error) {
	if status >= 500 {
		log.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg(message)
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
