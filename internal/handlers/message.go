package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lwp3877/meetpin-server/internal/apperr"
	"github.com/lwp3877/meetpin-server/internal/cache"
	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
	"github.com/lwp3877/meetpin-server/internal/moderation"
	"github.com/lwp3877/meetpin-server/internal/models"
	"github.com/lwp3877/meetpin-server/internal/notify"
)

type MessageHandler struct {
	db    *database.Database
	cache *cache.Cache
	hub   *notify.Hub
}

func NewMessageHandler(db *database.Database, cch *cache.Cache, hub *notify.Hub) *MessageHandler {
	return &MessageHandler{db: db, cache: cch, hub: hub}
}

// доступ к переписке только у сторон матча и только пока нет
// блокировки между ними
func (h *MessageHandler) authorizeMatch(c *gin.Context) (*models.Match, uuid.UUID, bool) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	match, err := h.db.GetMatch(c.Param("id"))
	if err != nil {
		fail(c, err)
		return nil, uuid.Nil, false
	}

	if match.HostUID != userID && match.GuestUID != userID {
		fail(c, apperr.Forbidden("you are not a participant of this match"))
		return nil, uuid.Nil, false
	}

	other := match.HostUID
	if other == userID {
		other = match.GuestUID
	}

	blocked, err := h.db.IsBlocked(userID, other)
	if err != nil {
		fail(c, err)
		return nil, uuid.Nil, false
	}
	if blocked {
		fail(c, apperr.Forbidden("this conversation is blocked"))
		return nil, uuid.Nil, false
	}

	return match, userID, true
}

// GetMessages история переписки матча, кэш на 30 секунд
func (h *MessageHandler) GetMessages(c *gin.Context) {
	match, _, ok := h.authorizeMatch(c)
	if !ok {
		return
	}

	page, limit, offset := parsePagination(c)

	key := cache.MessagesKey(match.ID.String(), limit, offset)
	result, err := cache.WithCache(c.Request.Context(), h.cache, key, cache.TTLMessages, func() (dto.MessageListResponse, error) {
		messages, total, err := h.db.GetMatchMessages(match.ID, limit, offset)
		if err != nil {
			return dto.MessageListResponse{}, err
		}

		responses := make([]dto.MessageResponse, len(messages))
		for i := range messages {
			responses[i] = dto.NewMessageResponse(&messages[i])
		}

		return dto.MessageListResponse{
			Messages:   responses,
			Pagination: dto.Pagination{Page: page, Limit: limit, Total: total},
			Match: dto.MatchInfo{
				ID:       match.ID,
				RoomID:   match.RoomID,
				HostUID:  match.HostUID,
				GuestUID: match.GuestUID,
			},
		}, nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateMessage отправка сообщения; текст проходит фильтр запрещённых
// слов до сохранения
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	match, userID, ok := h.authorizeMatch(c)
	if !ok {
		return
	}

	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if moderation.ContainsForbiddenWords(req.Text) {
		failValidation(c, "message contains forbidden words")
		return
	}

	message := &models.Message{
		MatchID:   match.ID,
		SenderUID: userID,
		Text:      req.Text,
	}
	if err := h.db.SaveMessage(message); err != nil {
		fail(c, err)
		return
	}

	// новое сообщение стареет только страницы этого матча
	h.cache.Invalidate(c.Request.Context(), cache.MessagesPattern(match.ID.String()))

	other := match.HostUID
	if other == userID {
		other = match.GuestUID
	}
	h.pushMessageNotification(c, other, match)

	full, err := h.db.GetMessage(message.ID.String())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": dto.NewMessageResponse(full)})
}

func (h *MessageHandler) pushMessageNotification(c *gin.Context, userID uuid.UUID, match *models.Match) {
	notification := &models.Notification{
		UserUID: userID,
		Type:    models.NotificationNewMessage,
		Body:    "you have a new message",
		RoomID:  &match.RoomID,
		MatchID: &match.ID,
	}
	if err := h.db.SaveNotification(notification); err != nil {
		log.Printf("notification save failed: %v", err)
		return
	}

	h.hub.Push(userID, notification)
	h.cache.Invalidate(c.Request.Context(), cache.NotificationsKey(userID.String()))
}
