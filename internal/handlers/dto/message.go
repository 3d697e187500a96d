package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/models"
)

type CreateMessageRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"match_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Sender    UserInfo  `json:"sender"`
}

type MessageListResponse struct {
	Messages   []MessageResponse `json:"messages"`
	Pagination Pagination        `json:"pagination"`
	Match      MatchInfo         `json:"match"`
}

type MatchInfo struct {
	ID       uuid.UUID `json:"id"`
	RoomID   uuid.UUID `json:"room_id"`
	HostUID  uuid.UUID `json:"host_uid"`
	GuestUID uuid.UUID `json:"guest_uid"`
}

type MatchResponse struct {
	ID        uuid.UUID   `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Room      RoomSummary `json:"room"`
	Host      UserInfo    `json:"host"`
	Guest     UserInfo    `json:"guest"`
}

type MatchListResponse struct {
	Matches    []MatchResponse `json:"matches"`
	Pagination Pagination      `json:"pagination"`
}

func NewMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID,
		MatchID:   message.MatchID,
		Text:      message.Text,
		CreatedAt: message.CreatedAt,
		Sender:    NewUserInfo(&message.Sender),
	}
}

func NewMatchResponse(match *models.Match) MatchResponse {
	return MatchResponse{
		ID:        match.ID,
		CreatedAt: match.CreatedAt,
		Room:      NewRoomSummary(&match.Room),
		Host:      NewUserInfo(&match.Host),
		Guest:     NewUserInfo(&match.Guest),
	}
}
