package models

import (
	"github.com/google/uuid"
	"time"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Nickname     string    `gorm:"uniqueIndex;not null"`
	AgeRange     string    `gorm:"check:age_range IN ('20s_early','20s_late','30s_early','30s_late','40s','50s+')"`
	Intro        string
	AvatarURL    string
	CreatedAt    time.Time
}
