package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RateLimit ограничивает число запросов с одного IP за окно window.
// Если Redis недоступен, запрос пропускается.
func RateLimit(client *redis.Client, scope string, limit int, window time.Duration, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s:%s", scope, c.ClientIP())

		// INCR и EXPIRE NX в одном MULTI: ключ не останется без TTL
		var incr *redis.IntCmd
		_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, window)
			return nil
		})
		if err != nil {
			log.Warn("rate limit check failed", logger.String("error", err.Error()))
			c.Next()
			return
		}
		count := incr.Val()

		c.Header("RateLimit-Limit", strconv.Itoa(limit))
		c.Header("RateLimit-Remaining", strconv.FormatInt(max(int64(limit)-count, 0), 10))

		if count > int64(limit) {
			c.Set("error", "rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"message": "Too many requests, please try again later."},
			)
			return
		}

		c.Next()
	}
}
