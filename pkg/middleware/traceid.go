package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader carries the per-request id back to the caller so log lines
// and API responses can be correlated.
const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware tags every request with a fresh uuid. The id is stored in
// the gin context under "trace_id" and echoed in the response headers.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("trace_id", id)
		c.Writer.Header().Set(TraceIDHeader, id)
		c.Next()
	}
}
