package database

import (
	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/models"
)

func (d *Database) SaveNotification(notification *models.Notification) error {
	return d.db.Create(notification).Error
}

func (d *Database) ListNotifications(userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := d.db.
		Where("user_uid = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	return notifications, err
}

func (d *Database) CountUnreadNotifications(userID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Notification{}).
		Where("user_uid = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}

// MarkNotificationRead помечает уведомление прочитанным; фильтр по
// user_uid не даёт читать чужие
func (d *Database) MarkNotificationRead(id, userID uuid.UUID) error {
	return d.db.Model(&models.Notification{}).
		Where("id = ? AND user_uid = ?", id, userID).
		Update("read", true).Error
}

func (d *Database) MarkAllNotificationsRead(userID uuid.UUID) error {
	return d.db.Model(&models.Notification{}).
		Where("user_uid = ? AND read = false", userID).
		Update("read", true).Error
}
