package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceIDMiddleware tags every request with a fresh trace ID. The ID is
// echoed in the response header and picked up by the error envelope, so a
// failed call can be matched to its server logs.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("trace_id", id)
		c.Writer.Header().Set(traceHeader, id)
		c.Next()
	}
}
