package dto

import (
	"github.com/google/uuid"
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// UserInfo публичная часть профиля, уходит внутри других ответов
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname"`
	AgeRange  string    `json:"age_range,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}
