package models

import (
	"github.com/google/uuid"
	"time"
)

// BlockedUser направленная блокировка; проверка всегда симметричная
// (любое из двух направлений запрещает контакт)
type BlockedUser struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BlockerUID uuid.UUID `gorm:"not null;uniqueIndex:idx_blocked_pair"`
	BlockedUID uuid.UUID `gorm:"not null;uniqueIndex:idx_blocked_pair"`
	CreatedAt  time.Time
}
