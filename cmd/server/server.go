package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/lwp3877/meetpin-server/internal/cache"
	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers"
	"github.com/lwp3877/meetpin-server/internal/notify"
	"github.com/lwp3877/meetpin-server/internal/ratelimit"
	"github.com/lwp3877/meetpin-server/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	Cache      *cache.Cache
	Limiter    *ratelimit.Limiter
	Hub        *notify.Hub
	JWTManager *auth.JWTManager
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Redis опционален: без него кэш и чёрный список токенов просто
	// выключены, все чтения идут в базу
	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable, running without cache: %v", err)
			rdb = nil
		}
	} else {
		log.Println("REDIS_URL not set, running without cache")
	}

	cch := cache.NewCache(rdb)
	limiter := ratelimit.NewLimiter()

	hub := notify.NewHub()
	go hub.Run()

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb, cch)
	roomH := handlers.NewRoomHandler(dbConn, cch)
	requestH := handlers.NewRequestHandler(dbConn, cch, hub)
	matchH := handlers.NewMatchHandler(dbConn)
	messageH := handlers.NewMessageHandler(dbConn, cch, hub)
	notificationH := handlers.NewNotificationHandler(dbConn, cch, hub)
	blockH := handlers.NewBlockHandler(dbConn)
	reportH := handlers.NewReportHandler(dbConn)

	router := gin.Default()
	APIEndpoints(router, &Handlers{
		Auth:         authH,
		Room:         roomH,
		Request:      requestH,
		Match:        matchH,
		Message:      messageH,
		Notification: notificationH,
		Block:        blockH,
		Report:       reportH,
	}, jwtMgr, rdb, limiter)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		Cache:      cch,
		Limiter:    limiter,
		Hub:        hub,
		JWTManager: jwtMgr,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
