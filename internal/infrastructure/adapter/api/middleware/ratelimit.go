package middleware

import (
	"net/http"
	"sync"
	"time"

	domainerr "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig configures the per-client token buckets
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	MaxClients        int           // Idle buckets are swept once this many are tracked
	IdleTTL           time.Duration // A bucket unused this long may be swept
}

// DefaultRateLimitConfig allows a few taps per second per phone
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 5,
		Burst:             10,
		MaxClients:        10_000,
		IdleTTL:           10 * time.Minute,
	}
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	cfg     RateLimitConfig
	logger  coreport.Logger
	mu      sync.Mutex
	clients map[string]*clientBucket
}

// NewRateLimiter creates a limiter; zero fields fall back to the defaults
func NewRateLimiter(cfg RateLimitConfig, logger coreport.Logger) *RateLimiter {
	def := DefaultRateLimitConfig()
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = def.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = def.MaxClients
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = def.IdleTTL
	}
	return &RateLimiter{
		cfg:     cfg,
		logger:  logger,
		clients: make(map[string]*clientBucket),
	}
}

// Allow takes one token from the bucket of key
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	bucket, ok := rl.clients[key]
	if !ok {
		if len(rl.clients) >= rl.cfg.MaxClients {
			rl.sweep(now)
		}
		bucket = &clientBucket{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)}
		rl.clients[key] = bucket
	}
	bucket.lastSeen = now
	rl.mu.Unlock()

	return bucket.limiter.AllowN(now, 1)
}

// sweep drops idle buckets; caller holds mu
func (rl *RateLimiter) sweep(now time.Time) {
	for key, bucket := range rl.clients {
		if now.Sub(bucket.lastSeen) > rl.cfg.IdleTTL {
			delete(rl.clients, key)
		}
	}
}

// Handler rejects requests over the client's rate with 429
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if rl.Allow(ip) {
			c.Next()
			return
		}

		rl.logger.Warn("Rate limit exceeded", map[string]any{
			"client_ip":  ip,
			"path":       c.FullPath(),
			"request_id": coreport.RequestIDFrom(c.Request.Context()),
		})
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrRateLimited),
			Message: "Too many requests, slow down",
		})
	}
}
