package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lwp3877/meetpin-server/internal/cache"
	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
	"github.com/lwp3877/meetpin-server/internal/notify"
)

type NotificationHandler struct {
	db       *database.Database
	cache    *cache.Cache
	hub      *notify.Hub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(db *database.Database, cch *cache.Cache, hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{
		db:    db,
		cache: cch,
		hub:   hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ListNotifications последние уведомления; кэшируется только первая
// страница — у неё один ключ на пользователя, и именно её сбрасывают
// мутации
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	_, limit, offset := parsePagination(c)

	fetch := func() (dto.NotificationListResponse, error) {
		notifications, err := h.db.ListNotifications(userID, limit, offset)
		if err != nil {
			return dto.NotificationListResponse{}, err
		}

		unread, err := h.db.CountUnreadNotifications(userID)
		if err != nil {
			return dto.NotificationListResponse{}, err
		}

		responses := make([]dto.NotificationResponse, len(notifications))
		for i := range notifications {
			responses[i] = dto.NewNotificationResponse(&notifications[i])
		}

		return dto.NotificationListResponse{
			Notifications: responses,
			UnreadCount:   unread,
		}, nil
	}

	var (
		result dto.NotificationListResponse
		err    error
	)
	if offset == 0 && limit == defaultPageSize {
		result, err = cache.WithCache(c.Request.Context(), h.cache,
			cache.NotificationsKey(userID.String()), cache.TTLNotifications, fetch)
	} else {
		result, err = fetch()
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failValidation(c, "invalid notification id")
		return
	}

	if err := h.db.MarkNotificationRead(id, userID); err != nil {
		fail(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.NotificationsKey(userID.String()))

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if err := h.db.MarkAllNotificationsRead(userID); err != nil {
		fail(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.NotificationsKey(userID.String()))

	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

// Stream websocket-поток уведомлений; доставка best-effort
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := notify.NewClient(h.hub, conn, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
