package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
)

// quietPaths are health and scrape endpoints logged at debug level
var quietPaths = []string{"/health", "/ready", "/metrics"}

// Logger returns a request logging middleware
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Duration("latency", latency),
			zap.String("request_id", GetRequestID(c)),
		}
		if claims := security.GetClaims(c); claims != nil {
			fields = append(fields, zap.String("admin", claims.Username))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.Log(requestLevel(path, status), requestMessage(status), fields...)
	}
}

func requestLevel(path string, status int) zapcore.Level {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel
	case status >= 400:
		return zapcore.WarnLevel
	case isQuietPath(path):
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func requestMessage(status int) string {
	switch {
	case status >= 500:
		return "server error"
	case status >= 400:
		return "client error"
	default:
		return "request"
	}
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}
