package middleware

import (
	"fmt"
	"strconv"
	"time"

	"mangopay-sync/config"
	redisStore "mangopay-sync/internal/adapter/storage/redis"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Rate limit groups. Every remote write costs processor quota, so it gets
// the tightest budget.
const (
	GroupRemoteWrite = "remote_write"
	GroupRemoteRead  = "remote_read"
	GroupLocal       = "local"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// RateLimitRules builds per-minute rules from configuration.
func RateLimitRules(cfg config.RateLimitConfig) map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupRemoteWrite: {Limit: cfg.RemoteWrite, Window: time.Minute},
		GroupRemoteRead:  {Limit: cfg.RemoteRead, Window: time.Minute},
		GroupLocal:       {Limit: cfg.Local, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store failures let the request through.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", identifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// identifier keys counters by operator, falling back to the client IP.
func identifier(c *gin.Context) string {
	if op := Operator(c); op != "" {
		return op
	}
	return c.ClientIP()
}
