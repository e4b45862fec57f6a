package middleware

import (
	"math"
	"net/http"
	"strconv"

	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit 按客户端 IP 计数；计数存储故障时放行并记录日志
func RateLimit(l *service.Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limit store unavailable", zap.String("scope", l.Scope()), zap.Error(err))
			c.Next()
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			pkg.RateLimited.WithLabelValues(l.Scope()).Inc()
			pkg.Fail(c, http.StatusTooManyRequests, pkg.TagTooManyRequests, "too many requests, please try again later")
			return
		}
		c.Next()
	}
}
