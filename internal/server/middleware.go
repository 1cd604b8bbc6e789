package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey    = "request_id"
	HeaderRequestID = "X-Request-ID"
)

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// rateLimit rejects clients over budget with 429. Limiter errors let the
// request through.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}

		exceeded, err := s.limiter.Exceeded(c.Request.Context(), c.ClientIP(), "generate")
		if err != nil {
			s.logger.Warn("Rate limit check failed",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err))
			c.Next()
			return
		}
		if exceeded {
			if s.metrics != nil {
				s.metrics.RateLimited.WithLabelValues("http").Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
