package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

// WindowStore counts requests per key over a sliding window.
type WindowStore interface {
	// Hit records a request at now and returns the number of accepted
	// requests in the window including this one, and the oldest of them.
	// A hit that pushes the count past max is not retained.
	Hit(ctx context.Context, key string, now time.Time, window time.Duration, max int) (count int, oldest time.Time, err error)
}

// RateLimiter is a global per-IP sliding window applied ahead of all routes.
func RateLimiter(store WindowStore, maxRequests int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		key := "rl:" + c.ClientIP()

		count, oldest, err := store.Hit(c.Request.Context(), key, now, window, maxRequests)
		if err != nil {
			log.Error("rate limiter store error", "key", key, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter error"))
			return
		}

		resetAt := oldest.Add(window)
		remaining := maxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if count > maxRequests {
			c.Header("Retry-After", strconv.Itoa(resetInSeconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			return
		}

		c.Next()
	}
}
