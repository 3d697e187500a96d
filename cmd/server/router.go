package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/lwp3877/meetpin-server/internal/handlers"
	"github.com/lwp3877/meetpin-server/internal/middleware"
	"github.com/lwp3877/meetpin-server/internal/ratelimit"
	"github.com/lwp3877/meetpin-server/pkg/auth"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Room         *handlers.RoomHandler
	Request      *handlers.RequestHandler
	Match        *handlers.MatchHandler
	Message      *handlers.MessageHandler
	Notification *handlers.NotificationHandler
	Block        *handlers.BlockHandler
	Report       *handlers.ReportHandler
}

func APIEndpoints(r *gin.Engine, h *Handlers, jwtMgr *auth.JWTManager, rdb *redis.Client, limiter *ratelimit.Limiter) {
	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register",
			middleware.RateLimitByIP(limiter, "register", 3, time.Hour),
			h.Auth.Register)
		authGroup.POST("/login",
			middleware.RateLimitByIP(limiter, "login", 5, 15*time.Minute),
			h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	// API endpoints
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/rooms",
			middleware.RateLimitByUserIP(limiter, "rooms_list", 100, time.Minute),
			h.Room.ListRooms)
		api.POST("/rooms",
			middleware.RateLimitByUser(limiter, "room_create", 5, time.Minute),
			h.Room.CreateRoom)
		api.GET("/rooms/:id", h.Room.GetRoom)
		api.PATCH("/rooms/:id", h.Room.UpdateRoom)
		api.DELETE("/rooms/:id", h.Room.DeleteRoom)

		api.POST("/requests",
			middleware.RateLimitByUser(limiter, "request_create", 20, time.Minute),
			h.Request.CreateRequest)
		api.GET("/requests",
			middleware.RateLimitByUserIP(limiter, "requests_list", 100, time.Minute),
			h.Request.ListRequests)
		api.PATCH("/requests/:id", h.Request.UpdateRequest)
		api.DELETE("/requests/:id", h.Request.DeleteRequest)

		api.GET("/matches", h.Match.ListMyMatches)
		api.GET("/matches/:id/messages", h.Message.GetMessages)
		api.POST("/matches/:id/messages",
			middleware.RateLimitByUser(limiter, "message_create", 50, time.Minute),
			h.Message.CreateMessage)

		api.GET("/notifications", h.Notification.ListNotifications)
		api.PATCH("/notifications/:id/read", h.Notification.MarkRead)
		api.POST("/notifications/read-all", h.Notification.MarkAllRead)

		api.POST("/blocks", h.Block.Block)
		api.POST("/reports",
			middleware.RateLimitByUser(limiter, "report_create", 3, 10*time.Minute),
			h.Report.CreateReport)

		api.GET("/profile/:id", h.Auth.GetProfile)
		api.PATCH("/profile", h.Auth.UpdateProfile)
	}

	// WebSocket endpoint: токен идёт в query, Authorization header
	// для браузерного websocket недоступен
	ws := r.Group("/ws")
	ws.Use(middleware.WSAuthMiddleware(jwtMgr, rdb))
	{
		ws.GET("/notifications", h.Notification.Stream)
	}
}
