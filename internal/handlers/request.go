package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lwp3877/meetpin-server/internal/apperr"
	"github.com/lwp3877/meetpin-server/internal/cache"
	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
	"github.com/lwp3877/meetpin-server/internal/models"
	"github.com/lwp3877/meetpin-server/internal/notify"
)

type RequestHandler struct {
	db    *database.Database
	cache *cache.Cache
	hub   *notify.Hub
}

func NewRequestHandler(db *database.Database, cch *cache.Cache, hub *notify.Hub) *RequestHandler {
	return &RequestHandler{db: db, cache: cch, hub: hub}
}

// CreateRequest подача заявки на участие. Порядок проверок: комната
// существует, заявитель не хост, дедлайн за час до старта не прошёл,
// есть свободные места, нет блокировки. Дубликат ловит уникальный
// индекс (room_id, requester_uid) — повторная подача после отказа
// тоже запрещена.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	room, err := h.db.GetRoom(req.RoomID.String())
	if err != nil {
		fail(c, err)
		return
	}

	if room.HostUID == userID {
		fail(c, apperr.Forbidden("you cannot request to join your own room"))
		return
	}

	if time.Now().After(room.StartAt.Add(-database.CreateCutoff)) {
		fail(c, apperr.Gone("the request deadline for this room has passed"))
		return
	}

	accepted, err := h.db.CountAcceptedRequests(room.ID)
	if err != nil {
		fail(c, err)
		return
	}
	if accepted >= int64(room.MaxPeople-1) {
		fail(c, apperr.Full("this room is full"))
		return
	}

	blocked, err := h.db.IsBlocked(userID, room.HostUID)
	if err != nil {
		fail(c, err)
		return
	}
	if blocked {
		fail(c, apperr.Forbidden("you cannot join this room"))
		return
	}

	request := &models.Request{
		RoomID:       room.ID,
		RequesterUID: userID,
		Message:      req.Message,
	}
	if err := h.db.CreateRequest(request); err != nil {
		fail(c, err)
		return
	}

	full, err := h.db.GetRequest(request.ID.String())
	if err != nil {
		fail(c, err)
		return
	}

	h.sendNotification(c, room.HostUID, models.NotificationNewRequest,
		full.Requester.Nickname+" wants to join \""+room.Title+"\"", &room.ID, nil)

	c.JSON(http.StatusCreated, gin.H{"request": dto.NewRequestResponse(full)})
}

// ListRequests ?type=outgoing — мои заявки, ?type=incoming — заявки
// во все мои комнаты; новые первыми
func (h *RequestHandler) ListRequests(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	page, limit, offset := parsePagination(c)

	view := c.DefaultQuery("type", "outgoing")

	var (
		requests []models.Request
		total    int64
		err      error
	)
	switch view {
	case "outgoing":
		requests, total, err = h.db.ListOutgoingRequests(userID, limit, offset)
	case "incoming":
		requests, total, err = h.db.ListIncomingRequests(userID, limit, offset)
	default:
		failValidation(c, "type must be outgoing or incoming")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	responses := make([]dto.RequestResponse, len(requests))
	for i := range requests {
		responses[i] = dto.NewRequestResponse(&requests[i])
	}

	c.JSON(http.StatusOK, dto.RequestListResponse{
		Requests:   responses,
		Pagination: dto.Pagination{Page: page, Limit: limit, Total: total},
	})
}

// UpdateRequest принятие или отклонение заявки хостом. Принятие идёт
// одной транзакцией вместе с созданием матча.
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failValidation(c, "invalid request id")
		return
	}

	var req dto.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	request, err := h.db.GetRequest(id.String())
	if err != nil {
		fail(c, err)
		return
	}

	if request.Room.HostUID != userID {
		fail(c, apperr.Forbidden("only the host can handle this request"))
		return
	}
	if request.Status != models.RequestPending {
		fail(c, apperr.Conflict("request was already handled"))
		return
	}
	if time.Now().After(request.Room.StartAt) {
		fail(c, apperr.Gone("this room has already started"))
		return
	}

	switch req.Status {
	case models.RequestAccepted:
		match, err := h.db.AcceptRequest(id)
		if err != nil {
			fail(c, err)
			return
		}

		// принятие меняет счётчик участников в detail-ключе комнаты;
		// отказ кэшированных данных не трогает
		h.cache.Invalidate(c.Request.Context(), cache.RoomKey(request.RoomID.String()))

		h.sendNotification(c, request.RequesterUID, models.NotificationRequestAccepted,
			"your request to join \""+request.Room.Title+"\" was accepted", &request.RoomID, &match.ID)

	case models.RequestRejected:
		if err := h.db.RejectRequest(id); err != nil {
			fail(c, err)
			return
		}

		h.sendNotification(c, request.RequesterUID, models.NotificationRequestRejected,
			"your request to join \""+request.Room.Title+"\" was rejected", &request.RoomID, nil)
	}

	updated, err := h.db.GetRequest(id.String())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": dto.NewRequestResponse(updated)})
}

// DeleteRequest отзыв заявки её автором, только пока она pending
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failValidation(c, "invalid request id")
		return
	}

	request, err := h.db.GetRequest(id.String())
	if err != nil {
		fail(c, err)
		return
	}

	if request.RequesterUID != userID {
		fail(c, apperr.Forbidden("only the requester can cancel this request"))
		return
	}

	if err := h.db.DeleteRequest(id); err != nil {
		fail(c, err)
		return
	}

	// pending-заявки ни в один кэш не попадают, инвалидация не нужна
	c.JSON(http.StatusOK, gin.H{"message": "request cancelled"})
}

// sendNotification сохраняет уведомление, толкает его в websocket и
// сбрасывает кэш списка уведомлений получателя. Доставка best-effort:
// ошибка здесь не ломает основную операцию.
func (h *RequestHandler) sendNotification(c *gin.Context, userID uuid.UUID, kind, body string, roomID, matchID *uuid.UUID) {
	notification := &models.Notification{
		UserUID: userID,
		Type:    kind,
		Body:    body,
		RoomID:  roomID,
		MatchID: matchID,
	}
	if err := h.db.SaveNotification(notification); err != nil {
		log.Printf("notification save failed: %v", err)
		return
	}

	h.hub.Push(userID, notification)
	h.cache.Invalidate(c.Request.Context(), cache.NotificationsKey(userID.String()))
}
