package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"pharmacy-chatbot-backend/config"
	"pharmacy-chatbot-backend/metrics"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	clients  map[string]*ratelimit.Bucket
	mu       sync.RWMutex
	rate     float64
	capacity int64
}

func NewRateLimiter(rate float64, capacity int64) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*ratelimit.Bucket),
		rate:     rate,
		capacity: capacity,
	}
}

func (rl *RateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[clientIP]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[clientIP]; !exists {
			bucket = ratelimit.NewBucketWithRate(rl.rate, rl.capacity)
			rl.clients[clientIP] = bucket
			metrics.RateLimiterBucketsTotal.Set(float64(len(rl.clients)))
		}
		rl.mu.Unlock()
	}

	return bucket
}

// Cleanup drops idle clients (full buckets) every interval until ctx ends.
func (rl *RateLimiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.prune()
			}
		}
	}()
}

func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, bucket := range rl.clients {
		if bucket.Available() == bucket.Capacity() {
			delete(rl.clients, ip)
		}
	}
	metrics.RateLimiterBucketsTotal.Set(float64(len(rl.clients)))
}

// tokenCost prices a request. Chat messages may trigger external lookups and
// cost more than plain reads.
func tokenCost(c *gin.Context) int64 {
	switch c.FullPath() {
	case "/health", "/metrics":
		return 0
	case "/api/v1/chatbot/chat", "/api/v1/ws":
		return config.MaxRequestCost
	case "/api/v1/chatbot/reports":
		return 3
	default:
		return 1
	}
}

func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		cost := tokenCost(c)
		if cost == 0 {
			c.Next()
			return
		}

		// a bucket can never hold more than its capacity
		cost = min(cost, rl.capacity)
		bucket := rl.getBucket(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.FormatInt(rl.capacity, 10))
		c.Header("X-RateLimit-Rate", strconv.FormatFloat(rl.rate, 'f', -1, 64))

		if bucket.TakeAvailable(cost) < cost {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Rate limit exceeded. Please try again later.",
				"error":   "too many requests",
			})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(bucket.Available(), 10))
		c.Next()
	}
}
