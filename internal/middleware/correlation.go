package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/sirupsen/logrus"
)

// Correlation reuses the inbound X-Correlation-ID or creates one, echoes it
// on the response and stores it on the request context.
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(identity.HeaderCorrelationID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(identity.HeaderCorrelationID, id)
		c.Request = c.Request.WithContext(identity.WithCorrelationID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog logs one line per request.
func AccessLog(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"service":        service,
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         c.Writer.Status(),
			"latency":        time.Since(start).String(),
			"correlation_id": identity.CorrelationIDFromContext(c.Request.Context()),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request handled")
	}
}
