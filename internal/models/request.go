package models

import (
	"github.com/google/uuid"
	"time"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Request заявка на участие. На пару (комната, заявитель) может
// существовать максимум одна строка — включая отклонённые, повторная
// подача запрещена.
type Request struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RoomID       uuid.UUID `gorm:"not null;uniqueIndex:idx_requests_room_requester"`
	RequesterUID uuid.UUID `gorm:"not null;uniqueIndex:idx_requests_room_requester"`
	Message      string    `gorm:"size:500"`
	Status       string    `gorm:"default:'pending';check:status IN ('pending','accepted','rejected')"`
	CreatedAt    time.Time

	// Связи
	Room      Room `gorm:"foreignKey:RoomID"`
	Requester User `gorm:"foreignKey:RequesterUID"`
}
