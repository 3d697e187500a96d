package models

import (
	"github.com/google/uuid"
	"time"
)

const (
	NotificationRequestAccepted = "request_accepted"
	NotificationRequestRejected = "request_rejected"
	NotificationNewRequest      = "new_request"
	NotificationNewMessage      = "new_message"
)

// Notification уведомление о ключевом переходе; доставка best-effort
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserUID   uuid.UUID  `gorm:"not null;index"`
	Type      string     `gorm:"not null"`
	Body      string     `gorm:"not null"`
	RoomID    *uuid.UUID `gorm:"index"`
	MatchID   *uuid.UUID
	Read      bool `gorm:"default:false"`
	CreatedAt time.Time
}
