package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID is the header carrying the per-request correlation id.
const HeaderXRequestID = "X-Request-ID"

// RequestID tags every request with a correlation id. An id supplied by the
// caller is kept so upstream proxies can trace across services.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderXRequestID, rid)
		c.Writer.Header().Set(HeaderXRequestID, rid)
		c.Next()
	}
}
