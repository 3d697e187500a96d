package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/lwp3877/meetpin-server/pkg/auth"
)

const UserIDKey = "userID"

// AuthMiddleware проверяет JWT токен
func AuthMiddleware(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token", "code": "unauthorized"})
			c.Abort()
			return
		}

		// Чёрный список в Redis; недоступный Redis не блокирует вход,
		// корректность от кэша не зависит
		if redisClient != nil {
			exists, err := redisClient.Exists(context.Background(), auth.BlacklistKey(token)).Result()
			if err == nil && exists > 0 {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token is blacklisted", "code": "unauthorized"})
				c.Abort()
				return
			}
		}

		ident, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token", "code": "unauthorized"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, ident.UserID)
		c.Next()
	}
}

// WSAuthMiddleware авторизация для websocket: браузерный клиент не
// может выставить Authorization header, токен идёт в query
func WSAuthMiddleware(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			if fromHeader, err := auth.ExtractTokenFromHeader(c.Request); err == nil {
				token = fromHeader
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token", "code": "unauthorized"})
			c.Abort()
			return
		}

		if redisClient != nil {
			exists, err := redisClient.Exists(context.Background(), auth.BlacklistKey(token)).Result()
			if err == nil && exists > 0 {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token is blacklisted", "code": "unauthorized"})
				c.Abort()
				return
			}
		}

		ident, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token", "code": "unauthorized"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, ident.UserID)
		c.Next()
	}
}
