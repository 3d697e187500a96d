package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/models"
)

type CreateRequestRequest struct {
	RoomID  uuid.UUID `json:"room_id" binding:"required"`
	Message string    `json:"message" binding:"max=500"`
}

type UpdateRequestRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

type RequestResponse struct {
	ID        uuid.UUID   `json:"id"`
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Room      RoomSummary `json:"room"`
	Host      UserInfo    `json:"host"`
	Requester UserInfo    `json:"requester"`
}

type RequestListResponse struct {
	Requests   []RequestResponse `json:"requests"`
	Pagination Pagination        `json:"pagination"`
}

func NewRequestResponse(request *models.Request) RequestResponse {
	return RequestResponse{
		ID:        request.ID,
		Status:    request.Status,
		Message:   request.Message,
		CreatedAt: request.CreatedAt,
		Room:      NewRoomSummary(&request.Room),
		Host:      NewUserInfo(&request.Room.Host),
		Requester: NewUserInfo(&request.Requester),
	}
}
