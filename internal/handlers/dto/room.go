package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/geo"
	"github.com/lwp3877/meetpin-server/internal/models"
)

type CreateRoomRequest struct {
	Title       string    `json:"title" binding:"required,max=100"`
	Description string    `json:"description" binding:"max=1000"`
	Category    string    `json:"category" binding:"required,oneof=drink exercise other"`
	Lat         float64   `json:"lat" binding:"min=-90,max=90"`
	Lng         float64   `json:"lng" binding:"min=-180,max=180"`
	PlaceText   string    `json:"place_text" binding:"required,max=200"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	MaxPeople   int       `json:"max_people" binding:"required,min=2,max=20"`
	Fee         int       `json:"fee" binding:"min=0,max=1000000"`
	Visibility  string    `json:"visibility" binding:"omitempty,oneof=public private"`
}

// UpdateRoomRequest частичное обновление: nil-поле не трогаем
type UpdateRoomRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	Category    *string    `json:"category" binding:"omitempty,oneof=drink exercise other"`
	Lat         *float64   `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng         *float64   `json:"lng" binding:"omitempty,min=-180,max=180"`
	PlaceText   *string    `json:"place_text" binding:"omitempty,max=200"`
	StartAt     *time.Time `json:"start_at"`
	MaxPeople   *int       `json:"max_people" binding:"omitempty,min=2,max=20"`
	Fee         *int       `json:"fee" binding:"omitempty,min=0,max=1000000"`
	Visibility  *string    `json:"visibility" binding:"omitempty,oneof=public private"`
}

type RoomResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	PlaceText   string     `json:"place_text"`
	StartAt     time.Time  `json:"start_at"`
	MaxPeople   int        `json:"max_people"`
	Fee         int        `json:"fee"`
	Visibility  string     `json:"visibility"`
	BoostUntil  *time.Time `json:"boost_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Host        UserInfo   `json:"host"`
}

type RoomDetailResponse struct {
	RoomResponse
	ParticipantsCount int  `json:"participants_count"`
	IsHost            bool `json:"is_host"`
}

type RoomListResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Pagination Pagination     `json:"pagination"`
	BBox       geo.BBox       `json:"bbox"`
}

// RoomSummary короткая форма комнаты внутри заявок и матчей
type RoomSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	PlaceText string    `json:"place_text"`
	StartAt   time.Time `json:"start_at"`
	MaxPeople int       `json:"max_people"`
	Fee       int       `json:"fee"`
}

func NewUserInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Nickname:  u.Nickname,
		AgeRange:  u.AgeRange,
		AvatarURL: u.AvatarURL,
	}
}

func NewRoomResponse(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Title:       room.Title,
		Description: room.Description,
		Category:    room.Category,
		Lat:         room.Lat,
		Lng:         room.Lng,
		PlaceText:   room.PlaceText,
		StartAt:     room.StartAt,
		MaxPeople:   room.MaxPeople,
		Fee:         room.Fee,
		Visibility:  room.Visibility,
		BoostUntil:  room.BoostUntil,
		CreatedAt:   room.CreatedAt,
		Host:        NewUserInfo(&room.Host),
	}
}

func NewRoomSummary(room *models.Room) RoomSummary {
	return RoomSummary{
		ID:        room.ID,
		Title:     room.Title,
		Category:  room.Category,
		PlaceText: room.PlaceText,
		StartAt:   room.StartAt,
		MaxPeople: room.MaxPeople,
		Fee:       room.Fee,
	}
}
