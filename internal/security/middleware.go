package security

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerSecond int
	BurstSize         int
}

// Middleware applies per-client-IP rate limiting and permissive CORS.
type Middleware struct {
	rateLimiters map[string]*rate.Limiter
	mu           sync.Mutex
	config       Config
}

func NewMiddleware(config Config) *Middleware {
	return &Middleware{
		rateLimiters: make(map[string]*rate.Limiter),
		config:       config,
	}
}

func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		m.mu.Lock()
		limiter, exists := m.rateLimiters[clientIP]
		if !exists {
			limiter = rate.NewLimiter(
				rate.Limit(m.config.RequestsPerSecond),
				m.config.BurstSize,
			)
			m.rateLimiters[clientIP] = limiter
		}
		m.mu.Unlock()

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
