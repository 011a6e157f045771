package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/resilience"
)

// RateLimit throttles each client on the listed routes, given as
// "METHOD /full/path" the way they are registered. Other routes pass through.
// Every route has its own budget per client.
func RateLimit(limiter *resilience.KeyedLimiter, logger *zap.Logger, routes ...string) gin.HandlerFunc {
	limited := make(map[string]bool, len(routes))
	for _, r := range routes {
		limited[r] = true
	}

	return func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()
		if !limited[route] {
			c.Next()
			return
		}

		ok, retryAfter := limiter.Allow(c.ClientIP() + "|" + route)
		if ok {
			c.Next()
			return
		}

		logger.Warn("Rate limit exceeded",
			zap.String("route", route),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", GetRequestID(c)),
		)
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.NewError[any]("too many requests, try again later"))
	}
}

func retryAfterSeconds(d time.Duration) int {
	secs := math.Ceil(d.Seconds())
	if secs < 1 {
		return 1
	}
	if secs > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(secs)
}
