package models

import (
	"github.com/google/uuid"
	"time"
)

// Match устойчивая пара хост-гость, создаётся только как следствие
// принятой заявки. Уникальный индекс (room_id, guest_uid) — последняя
// линия защиты от гонки двойного принятия: прикладная проверка
// вместимости сужает окно, индекс его закрывает.
type Match struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RoomID    uuid.UUID `gorm:"not null;uniqueIndex:idx_matches_room_guest"`
	HostUID   uuid.UUID `gorm:"not null;index"`
	GuestUID  uuid.UUID `gorm:"not null;uniqueIndex:idx_matches_room_guest"`
	CreatedAt time.Time

	// Связи
	Room  Room `gorm:"foreignKey:RoomID"`
	Host  User `gorm:"foreignKey:HostUID"`
	Guest User `gorm:"foreignKey:GuestUID"`
}
