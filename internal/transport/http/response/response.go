package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/core/apperr"
)

// Err writes the JSON error envelope with a real HTTP status.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortErr is Err for middleware, stopping the chain.
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// FromError translates any error at the handler boundary. Unexpected
// failures are logged with their cause and surfaced as a generic 500;
// internals never reach the client.
func FromError(c *gin.Context, l *zap.Logger, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError && l != nil {
		l.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	Err(c, status, apperr.Message(err))
}
