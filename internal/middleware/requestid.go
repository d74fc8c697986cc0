package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"school-case-management/pkg/log"
)

// RequestID propagates the caller's X-Request-ID or mints a new one, and
// stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(string(log.RequestIDKey), id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
