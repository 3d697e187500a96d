package database

import (
	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	if err := d.db.Preload("Sender").First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetMatchMessages сообщения матча, новые первыми; вызывающий
// разворачивает порядок для отображения
func (d *Database) GetMatchMessages(matchID uuid.UUID, limit, offset int) ([]models.Message, int64, error) {
	var total int64
	if err := d.db.Model(&models.Message{}).Where("match_id = ?", matchID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	err := d.db.
		Where("match_id = ?", matchID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Sender").
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	// старые сообщения первыми
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, total, nil
}
