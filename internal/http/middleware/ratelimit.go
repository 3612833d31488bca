package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientWindow struct {
	start time.Time
	count int
}

var (
	rlMu      sync.Mutex
	rlClients = make(map[string]*clientWindow)
)

// SimpleRateLimit is an in-process fixed-window limiter keyed by client
// IP. It is the fallback when Redis is not configured.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rlMu.Lock()
		cw, ok := rlClients[ip]
		if !ok || now.Sub(cw.start) > window {
			rlClients[ip] = &clientWindow{start: now, count: 1}
			rlMu.Unlock()
			RLRequests.WithLabelValues(c.FullPath()).Inc()
			c.Next()
			return
		}

		cw.count++
		blocked := cw.count > maxRequests
		rlMu.Unlock()

		if blocked {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
