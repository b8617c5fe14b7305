package api

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter pairs a client's token bucket with the time it was last
// seen, so idle buckets can be evicted
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// CORS answers preflight requests and stamps permissive headers. The
// API is bearer-authenticated, so a wildcard origin does not widen
// access to another user's records.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// MaxBodySize rejects oversized request bodies. A declared
// Content-Length over the limit is refused outright with 413; bodies
// without a declared length are capped by MaxBytesReader so a handler
// read fails at the limit instead of buffering a transcript-sized
// payload. DELETE is included because record deletion carries a JSON
// body.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body exceeds the %d byte limit", maxBytes),
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// PerClientRateLimit applies a per-client-IP token bucket. The first
// call starts a single background sweeper that evicts buckets of
// clients not seen for a while.
func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	return func(c *gin.Context) {
		entry, _ := rateLimiters.LoadOrStore(c.ClientIP(), &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(rps), burst),
		})

		cl := entry.(*clientLimiter)
		cl.lastSeen = time.Now()

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please slow down your requests.",
			})
			return
		}
		c.Next()
	}
}

// cleanupOldRateLimiters periodically sweeps buckets idle for more than
// ten minutes until cleanupStop closes
func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sweepIdleClients(rateLimiters, time.Now().Add(-10*time.Minute))
		case <-cleanupStop:
			return
		}
	}
}

// sweepIdleClients removes every limiter last seen before cutoff
func sweepIdleClients(rateLimiters *sync.Map, cutoff time.Time) {
	rateLimiters.Range(func(key, value interface{}) bool {
		if cl, ok := value.(*clientLimiter); ok && cl.lastSeen.Before(cutoff) {
			rateLimiters.Delete(key)
		}
		return true
	})
}
