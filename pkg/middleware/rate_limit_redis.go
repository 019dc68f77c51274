package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/studydesk/go-services/pkg/logger"
	"github.com/studydesk/go-services/pkg/metrics"
)

// fixedWindow counts requests per client in Redis buckets of a fixed length,
// so every replica behind the same Redis shares one budget.
type fixedWindow struct {
	client  *redis.Client
	seconds int64
	allowed int64
}

// hit records one request for key and returns the count in the current
// bucket and the seconds left until the bucket rolls over.
func (w *fixedWindow) hit(ctx context.Context, key string, now time.Time) (int64, int64, error) {
	bucket := now.Unix() / w.seconds
	redisKey := fmt.Sprintf("rl:%s:%d", key, bucket)

	var incr *redis.IntCmd
	_, err := w.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, time.Duration(w.seconds+1)*time.Second)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return incr.Val(), (bucket+1)*w.seconds - now.Unix(), nil
}

// RedisRateLimitMiddleware limits each client IP to floor(rps*window)+burst
// requests per window. Without a client it degrades to the per-process
// token bucket of RateLimitMiddleware.
func RedisRateLimitMiddleware(client *redis.Client, rps float64, burst int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		return RateLimitMiddleware(rps, burst)
	}
	seconds := int64(window.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	fw := &fixedWindow{
		client:  client,
		seconds: seconds,
		allowed: int64(rps*float64(seconds)) + int64(burst),
	}

	return func(c *gin.Context) {
		count, remaining, err := fw.hit(c.Request.Context(), clientKey(c), time.Now())
		if err != nil {
			logger.Errorf("rate limit check failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate_limit_unavailable", "message": "Rate limit check failed"})
			return
		}
		if count > fw.allowed {
			c.Header("Retry-After", strconv.FormatInt(remaining, 10))
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited", "message": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		c.Next()
	}
}
