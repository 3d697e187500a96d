package models

import (
	"github.com/google/uuid"
	"time"
)

// Message сообщение внутри матча, append-only
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	MatchID   uuid.UUID `gorm:"not null;index"`
	SenderUID uuid.UUID `gorm:"not null"`
	Text      string    `gorm:"size:1000;not null"`
	CreatedAt time.Time

	// Связи
	Match  Match `gorm:"foreignKey:MatchID"`
	Sender User  `gorm:"foreignKey:SenderUID"`
}
