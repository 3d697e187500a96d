package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lwp3877/meetpin-server/internal/apperr"
	"github.com/lwp3877/meetpin-server/internal/cache"
	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
	"github.com/lwp3877/meetpin-server/internal/models"
	"github.com/lwp3877/meetpin-server/pkg/auth"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
	redis      *redis.Client
	cache      *cache.Cache
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager, rdb *redis.Client, cch *cache.Cache) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr, redis: rdb, cache: cch}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, err)
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Nickname:     req.Nickname,
		AgeRange:     req.AgeRange,
		CreatedAt:    time.Now(),
	}

	if err := h.db.SaveUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, apperr.Conflict("email or nickname is already taken"))
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

// Login выдаёт JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	user, err := h.db.FindUserByEmail(req.Email)
	if err != nil {
		fail(c, apperr.Unauthorized("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, apperr.Unauthorized("invalid credentials"))
		return
	}

	token, err := h.jwtManager.Generate(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout ставит токен в черный список в Redis до истечения
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		failValidation(c, err.Error())
		return
	}

	ident, err := h.jwtManager.Verify(rawToken)
	if err != nil {
		fail(c, apperr.Unauthorized("invalid token"))
		return
	}

	if h.redis != nil {
		ttl := time.Until(ident.ExpiresAt)
		h.redis.Set(context.Background(), auth.BlacklistKey(rawToken), 1, ttl)
	}

	c.Status(http.StatusOK)
}

// GetProfile профиль пользователя, кэш на 10 минут
func (h *AuthHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		failValidation(c, "invalid user id")
		return
	}

	profile, err := cache.WithCache(c.Request.Context(), h.cache, cache.ProfileKey(id), cache.TTLProfile, func() (dto.ProfileResponse, error) {
		user, err := h.db.GetUser(id)
		if err != nil {
			return dto.ProfileResponse{}, err
		}
		return dto.ProfileResponse{
			UserInfo: dto.NewUserInfo(user),
			Intro:    user.Intro,
		}, nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		fail(c, err)
		return
	}

	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.AgeRange != nil {
		user.AgeRange = *req.AgeRange
	}
	if req.Intro != nil {
		user.Intro = *req.Intro
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := h.db.UpdateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, apperr.Conflict("nickname is already taken"))
			return
		}
		fail(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.ProfileKey(userID.String()))

	c.JSON(http.StatusOK, gin.H{"profile": dto.ProfileResponse{
		UserInfo: dto.NewUserInfo(user),
		Intro:    user.Intro,
	}})
}
