package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"lightning-payment-gateway/pkg/apperror"
	"lightning-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderAPIKey carries the operator API key.
	HeaderAPIKey = "X-Api-Key"

	// CtxRequestID is the per-request correlation id set by RequestLogger.
	CtxRequestID = "request_id"
)

// APIKeyAuth creates a middleware that checks the operator API key with a
// constant-time compare. An empty configured key disables the check.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		provided := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			response.Error(c, apperror.ErrInvalidAPIKey())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger creates a middleware that tags each request with an id and
// logs it on completion.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRequestID, uuid.NewString())

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
