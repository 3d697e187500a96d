package models

import (
	"github.com/google/uuid"
	"time"
)

// Room объявление о встрече: точка на карте, время старта и
// вместимость (включая хоста). После start_at комната закрыта для
// заявок.
type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	HostUID     uuid.UUID `gorm:"not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Category    string    `gorm:"not null;check:category IN ('drink','exercise','other')"`
	Lat         float64   `gorm:"not null;index"`
	Lng         float64   `gorm:"not null;index"`
	PlaceText   string    `gorm:"not null"`
	StartAt     time.Time `gorm:"not null;index"`
	MaxPeople   int       `gorm:"not null;check:max_people >= 2 AND max_people <= 20"`
	Fee         int       `gorm:"default:0"`
	Visibility  string    `gorm:"default:'public';check:visibility IN ('public','private')"`
	BoostUntil  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Связи
	Host     User      `gorm:"foreignKey:HostUID"`
	Requests []Request `gorm:"foreignKey:RoomID"`
}
