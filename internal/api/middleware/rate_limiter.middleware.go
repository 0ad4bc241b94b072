package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/witnessos/engine-core/pkg/cache"
)

const anonymousClientID = "anonymous"

// maxRequestsPerMinute bounds requests per client within a one-minute window.
const maxRequestsPerMinute = 1000

// RateLimiter implements a fixed one-minute window counter per client,
// backed by the shared result cache. A client is identified by X-Client-ID
// when present, falling back to the remote address.
func RateLimiter(backend cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader("X-Client-ID")
		if clientID == "" {
			clientID = c.ClientIP()
		}
		if clientID == "" {
			clientID = anonymousClientID
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("rate_limit:%s:%d", clientID, window)

		var currentCount int64
		if countBytes, err := backend.Get(c.Request.Context(), key); err == nil {
			if count, parseErr := strconv.ParseInt(string(countBytes), 10, 64); parseErr == nil {
				currentCount = count
			}
		}

		if currentCount >= maxRequestsPerMinute {
			c.Header("X-Rate-Limit-Limit", strconv.FormatInt(maxRequestsPerMinute, 10))
			c.Header("X-Rate-Limit-Remaining", "0")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
				"code":  "rate_limited",
			})
			c.Abort()
			return
		}

		currentCount++
		_ = backend.Set(c.Request.Context(), key, []byte(strconv.FormatInt(currentCount, 10)), time.Minute)

		c.Header("X-Rate-Limit-Limit", strconv.FormatInt(maxRequestsPerMinute, 10))
		c.Header("X-Rate-Limit-Remaining", strconv.FormatInt(maxRequestsPerMinute-currentCount, 10))
		c.Next()
	}
}
