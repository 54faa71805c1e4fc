package middlewares

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/utils"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	visitors map[string]*visitor
	mu       sync.Mutex
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		rate:     rate.Limit(rps),
		burst:    burst,
		idleTTL:  3 * time.Minute,
		visitors: make(map[string]*visitor),
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
		}
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			utils.AbortWithError(c, http.StatusTooManyRequests, errors.New("too many requests, please slow down"))
			return
		}
		c.Next()
	}
}

// NewStrictRateLimiter shares one bucket across all clients, for order placement.
func NewStrictRateLimiter(every time.Duration, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(every), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.AbortWithError(c, http.StatusTooManyRequests, errors.New("too many orders, please wait a moment"))
			return
		}
		c.Next()
	}
}
