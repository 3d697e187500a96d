package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/models"
)

type BlockRequest struct {
	TargetUID uuid.UUID `json:"target_uid" binding:"required"`
	Action    string    `json:"action" binding:"required,oneof=block unblock"`
}

type CreateReportRequest struct {
	TargetUID uuid.UUID  `json:"target_uid" binding:"required"`
	RoomID    *uuid.UUID `json:"room_id"`
	Reason    string     `json:"reason" binding:"required,max=500"`
}

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Body      string     `json:"body"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	MatchID   *uuid.UUID `json:"match_id,omitempty"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Body:      n.Body,
		RoomID:    n.RoomID,
		MatchID:   n.MatchID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
