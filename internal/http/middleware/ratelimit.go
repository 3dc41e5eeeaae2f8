// README: Fixed-window per-IP rate limiter backed by Redis counters.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitPrefix = "travelplanner:ratelimit:"

type RateLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	log    *zap.Logger
	now    func() time.Time
}

func NewRateLimiter(client redis.Cmdable, limit int, window time.Duration, log *zap.Logger) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window, log: log, now: time.Now}
}

// Allow increments the caller's counter for the current window and reports
// whether it is still within the limit, plus the seconds left in the window.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	now := l.now()
	windowSecs := int64(l.window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}
	slot := now.Unix() / windowSecs
	redisKey := fmt.Sprintf("%s%s:%d", rateLimitPrefix, key, slot)
	retryAfter := int((slot+1)*windowSecs - now.Unix())

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, time.Duration(windowSecs)*time.Second)
		return nil
	})
	if err != nil {
		return true, 0, fmt.Errorf("rate limit counter: %w", err)
	}
	return incr.Val() <= int64(l.limit), retryAfter, nil
}

// Middleware rejects over-limit callers with 429. Redis errors let the request through.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			l.log.Warn("rate limiter unavailable, allowing request",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
			return
		}
		c.Next()
	}
}
