package models

import (
	"github.com/google/uuid"
	"time"
)

// Report жалоба на пользователя, уходит в модерацию
type Report struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ReporterUID uuid.UUID  `gorm:"not null;index"`
	TargetUID   uuid.UUID  `gorm:"not null;index"`
	RoomID      *uuid.UUID
	Reason      string `gorm:"size:500;not null"`
	Status      string `gorm:"default:'pending';check:status IN ('pending','reviewed','resolved')"`
	CreatedAt   time.Time
}
