package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/ratelimit"
)

// Лимиты мутирующих операций. На один маршрут могут навешиваться
// несколько ограничителей (per-user, per-IP, per-user+IP) — слои
// защиты от злоупотреблений независимы.

func tooMany(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "too many requests, try again later",
		"code":  "rate_limited",
	})
}

// RateLimitByUser лимит на аутентифицированного пользователя
func RateLimitByUser(limiter *ratelimit.Limiter, action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(UserIDKey).(uuid.UUID)
		if !limiter.Allow(action+":user:"+userID.String(), limit, window) {
			tooMany(c)
			return
		}
		c.Next()
	}
}

// RateLimitByIP лимит на IP, работает и до аутентификации
func RateLimitByIP(limiter *ratelimit.Limiter, action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(action+":ip:"+c.ClientIP(), limit, window) {
			tooMany(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUserIP составной лимит пользователь+IP
func RateLimitByUserIP(limiter *ratelimit.Limiter, action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(UserIDKey).(uuid.UUID)
		if !limiter.Allow(action+":user_ip:"+userID.String()+":"+c.ClientIP(), limit, window) {
			tooMany(c)
			return
		}
		c.Next()
	}
}
