package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
)

type visitor struct {
	limiter *rate.Limiter
	last    time.Time
}

// NewRateLimitPerIP caps the request rate per client IP across the whole
// router, with an LRU cache bounding memory.
func NewRateLimitPerIP(limit, burst, cacheSize int, ttl time.Duration) gin.HandlerFunc {
	visitors, _ := lru.New[string, *visitor](cacheSize)
	var mu sync.Mutex

	// Background sweep of idle IPs.
	go func() {
		ticker := time.NewTicker(ttl)
		for range ticker.C {
			mu.Lock()
			for _, key := range visitors.Keys() {
				if v, ok := visitors.Peek(key); ok && time.Since(v.last) > ttl {
					visitors.Remove(key)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		host, _, _ := net.SplitHostPort(c.Request.RemoteAddr)

		mu.Lock()
		v, ok := visitors.Get(host)
		if !ok {
			v = &visitor{
				limiter: rate.NewLimiter(rate.Limit(limit), burst),
			}
			visitors.Add(host, v)
		}
		v.last = time.Now()
		mu.Unlock()

		if !v.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": customErrors.ErrRateLimited.Error()})
			return
		}
		c.Next()
	}
}

// QuotaLimiter is the per-client sliding window consulted before protected
// handlers run.
type QuotaLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// NewEndpointQuota gates a route group by client IP and path using the
// shared window store. Store errors fail open: a broken redis must not take
// the API down.
func NewEndpointQuota(limiter QuotaLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		host, _, _ := net.SplitHostPort(c.Request.RemoteAddr)
		key := host + ":" + c.FullPath()

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": customErrors.ErrRateLimited.Error()})
			return
		}
		c.Next()
	}
}
