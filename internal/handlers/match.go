package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
)

type MatchHandler struct {
	db *database.Database
}

func NewMatchHandler(db *database.Database) *MatchHandler {
	return &MatchHandler{db: db}
}

// ListMyMatches матчи пользователя в обеих ролях
func (h *MatchHandler) ListMyMatches(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	page, limit, offset := parsePagination(c)

	matches, total, err := h.db.ListMatchesForUser(userID, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}

	responses := make([]dto.MatchResponse, len(matches))
	for i := range matches {
		responses[i] = dto.NewMatchResponse(&matches[i])
	}

	c.JSON(http.StatusOK, dto.MatchListResponse{
		Matches:    responses,
		Pagination: dto.Pagination{Page: page, Limit: limit, Total: total},
	})
}
