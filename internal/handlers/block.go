package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
)

type BlockHandler struct {
	db *database.Database
}

func NewBlockHandler(db *database.Database) *BlockHandler {
	return &BlockHandler{db: db}
}

// Block ставит или снимает блокировку; проверка блокировки всегда
// симметричная, так что достаточно одного направления
func (h *BlockHandler) Block(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if req.TargetUID == userID {
		failValidation(c, "you cannot block yourself")
		return
	}

	switch req.Action {
	case "block":
		if err := h.db.BlockUser(userID, req.TargetUID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user blocked"})
	case "unblock":
		if err := h.db.UnblockUser(userID, req.TargetUID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user unblocked"})
	}
}
