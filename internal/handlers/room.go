package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lwp3877/meetpin-server/internal/apperr"
	"github.com/lwp3877/meetpin-server/internal/cache"
	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/geo"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
	"github.com/lwp3877/meetpin-server/internal/models"
)

// Комната создаётся минимум за 30 минут до старта
const roomStartLeadTime = 30 * time.Minute

type RoomHandler struct {
	db    *database.Database
	cache *cache.Cache
}

func NewRoomHandler(db *database.Database, cch *cache.Cache) *RoomHandler {
	return &RoomHandler{db: db, cache: cch}
}

// ListRooms комнаты внутри bbox. Некорректный bbox — это ошибка
// валидации, а не запрос без фильтра.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	bboxString := c.Query("bbox")
	box := geo.ParseBBox(bboxString)
	if box == nil {
		failValidation(c, "bbox query parameter is required (south,west,north,east)")
		return
	}

	category := c.Query("category")
	switch category {
	case "", "drink", "exercise", "other":
	default:
		failValidation(c, "unknown category")
		return
	}

	page, limit, offset := parsePagination(c)

	key := cache.RoomsKey(box.String(), fmt.Sprintf("%s:%d:%d", category, page, limit))
	result, err := cache.WithCache(c.Request.Context(), h.cache, key, cache.TTLRooms, func() (dto.RoomListResponse, error) {
		rooms, total, err := h.db.ListRooms(box, category, limit, offset)
		if err != nil {
			return dto.RoomListResponse{}, err
		}

		responses := make([]dto.RoomResponse, len(rooms))
		for i := range rooms {
			responses[i] = dto.NewRoomResponse(&rooms[i])
		}

		return dto.RoomListResponse{
			Rooms:      responses,
			Pagination: dto.Pagination{Page: page, Limit: limit, Total: total},
			BBox:       *box,
		}, nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if req.StartAt.Before(time.Now().Add(roomStartLeadTime)) {
		failValidation(c, "room must start at least 30 minutes from now")
		return
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = "public"
	}

	room := &models.Room{
		HostUID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Lat:         req.Lat,
		Lng:         req.Lng,
		PlaceText:   req.PlaceText,
		StartAt:     req.StartAt,
		MaxPeople:   req.MaxPeople,
		Fee:         req.Fee,
		Visibility:  visibility,
	}

	if err := h.db.CreateRoom(room); err != nil {
		fail(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.RoomsPattern())

	full, err := h.db.GetRoom(room.ID.String())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"room": dto.NewRoomResponse(full)})
}

// GetRoom детали комнаты; счётчик участников — принятые заявки плюс
// хост. is_host зависит от зрителя и считается вне кэша.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		failValidation(c, "invalid room id")
		return
	}

	detail, err := cache.WithCache(c.Request.Context(), h.cache, cache.RoomKey(id), cache.TTLRoomDetail, func() (dto.RoomDetailResponse, error) {
		room, err := h.db.GetRoom(id)
		if err != nil {
			return dto.RoomDetailResponse{}, err
		}

		accepted, err := h.db.CountAcceptedRequests(room.ID)
		if err != nil {
			return dto.RoomDetailResponse{}, err
		}

		return dto.RoomDetailResponse{
			RoomResponse:      dto.NewRoomResponse(room),
			ParticipantsCount: int(accepted) + 1,
		}, nil
	})
	if err != nil {
		fail(c, err)
		return
	}

	detail.IsHost = detail.Host.ID == userID

	c.JSON(http.StatusOK, gin.H{"room": detail})
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	id := c.Param("id")

	room, err := h.db.GetRoom(id)
	if err != nil {
		fail(c, err)
		return
	}
	if room.HostUID != userID {
		fail(c, apperr.Forbidden("only the host can edit this room"))
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if req.StartAt != nil && req.StartAt.Before(time.Now().Add(roomStartLeadTime)) {
		failValidation(c, "room must start at least 30 minutes from now")
		return
	}

	if req.Title != nil {
		room.Title = *req.Title
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Category != nil {
		room.Category = *req.Category
	}
	if req.Lat != nil {
		room.Lat = *req.Lat
	}
	if req.Lng != nil {
		room.Lng = *req.Lng
	}
	if req.PlaceText != nil {
		room.PlaceText = *req.PlaceText
	}
	if req.StartAt != nil {
		room.StartAt = *req.StartAt
	}
	if req.MaxPeople != nil {
		room.MaxPeople = *req.MaxPeople
	}
	if req.Fee != nil {
		room.Fee = *req.Fee
	}
	if req.Visibility != nil {
		room.Visibility = *req.Visibility
	}

	if err := h.db.UpdateRoom(room); err != nil {
		fail(c, err)
		return
	}

	// правка комнаты делает несвежими её detail-ключ и списки
	h.cache.Invalidate(c.Request.Context(), cache.RoomKey(id), cache.RoomsPattern())

	c.JSON(http.StatusOK, gin.H{"room": dto.NewRoomResponse(room)})
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	id := c.Param("id")

	room, err := h.db.GetRoom(id)
	if err != nil {
		fail(c, err)
		return
	}
	if room.HostUID != userID {
		fail(c, apperr.Forbidden("only the host can delete this room"))
		return
	}

	matches, err := h.db.CountMatchesForRoom(room.ID)
	if err != nil {
		fail(c, err)
		return
	}
	if matches > 0 {
		fail(c, apperr.Conflict("room has confirmed participants and cannot be deleted"))
		return
	}

	if err := h.db.DeleteRoom(id); err != nil {
		fail(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.RoomKey(id), cache.RoomsPattern())

	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}
