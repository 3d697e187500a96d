package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lwp3877/meetpin-server/internal/database"
	"github.com/lwp3877/meetpin-server/internal/handlers/dto"
	"github.com/lwp3877/meetpin-server/internal/middleware"
	"github.com/lwp3877/meetpin-server/internal/models"
)

type ReportHandler struct {
	db *database.Database
}

func NewReportHandler(db *database.Database) *ReportHandler {
	return &ReportHandler{db: db}
}

// CreateReport жалоба на пользователя; лимит жёстче обычного, потому
// что каждая жалоба запускает модерацию
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if req.TargetUID == userID {
		failValidation(c, "you cannot report yourself")
		return
	}

	report := &models.Report{
		ReporterUID: userID,
		TargetUID:   req.TargetUID,
		RoomID:      req.RoomID,
		Reason:      req.Reason,
	}
	if err := h.db.SaveReport(report); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "report submitted"})
}
