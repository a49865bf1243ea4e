package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// stack trace and answers with a generic internal error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Get().Errorw("panic recovered",
					"panic", r,
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey),
				)
				c.Abort()
				writeError(c, apperrors.ErrInternalServer)
			}
		}()

		c.Next()
	}
}
