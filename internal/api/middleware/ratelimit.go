package middleware

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apierrors "github.com/cedrichille/monopoly-companion-app/internal/api/shared/errors"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
)

// RateLimitConfig bounds how fast a single client may call the API.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	MaxClients        int
}

// RateLimiter hands out one token bucket per client IP. The least recently
// seen clients are evicted once MaxClients is reached.
type RateLimiter struct {
	config   RateLimitConfig
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
}

// NewRateLimiter creates a per-client rate limiter
func NewRateLimiter(cfg RateLimitConfig) (*RateLimiter, error) {
	if cfg.Burst <= 0 {
		cfg.Burst = max(int(cfg.RequestsPerSecond), 1)
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = 1024
	}

	cache, err := lru.New[string, *rate.Limiter](cfg.MaxClients)
	if err != nil {
		return nil, fmt.Errorf("failed to create limiter cache: %w", err)
	}
	return &RateLimiter{config: cfg, limiters: cache}, nil
}

// Enabled reports whether requests are limited at all
func (r *RateLimiter) Enabled() bool {
	return r.config.RequestsPerSecond > 0
}

// Allow takes a token from the client's bucket
func (r *RateLimiter) Allow(client string) bool {
	if !r.Enabled() {
		return true
	}

	r.mu.Lock()
	limiter, ok := r.limiters.Get(client)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(r.config.RequestsPerSecond), r.config.Burst)
		r.limiters.Add(client, limiter)
	}
	r.mu.Unlock()

	return limiter.Allow()
}

// RateLimit rejects requests over the client's budget with 429
func RateLimit(r *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewRateLimitedError())
	}
}
