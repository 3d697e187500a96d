package database

import (
	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/models"
	"gorm.io/gorm"
)

func (d *Database) GetMatch(id string) (*models.Match, error) {
	var match models.Match
	if err := d.db.Preload("Room").Preload("Host").Preload("Guest").First(&match, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// ListMatchesForUser матчи, где пользователь хост или гость
func (d *Database) ListMatchesForUser(userID uuid.UUID, limit, offset int) ([]models.Match, int64, error) {
	query := d.db.Model(&models.Match{}).
		Where("host_uid = ? OR guest_uid = ?", userID, userID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matches []models.Match
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Room").
		Preload("Host").
		Preload("Guest").
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}

func (d *Database) CountMatchesForRoom(roomID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Match{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}
