package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/apperr"
	"github.com/lwp3877/meetpin-server/internal/models"
	"gorm.io/gorm"
)

func (d *Database) BlockUser(blockerUID, blockedUID uuid.UUID) error {
	block := models.BlockedUser{BlockerUID: blockerUID, BlockedUID: blockedUID}
	if err := d.db.Create(&block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("user is already blocked")
		}
		return err
	}
	return nil
}

func (d *Database) UnblockUser(blockerUID, blockedUID uuid.UUID) error {
	return d.db.Delete(&models.BlockedUser{}, "blocker_uid = ? AND blocked_uid = ?", blockerUID, blockedUID).Error
}

// IsBlocked симметричная проверка: блокировка в любом направлении
// запрещает контакт
func (d *Database) IsBlocked(a, b uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.BlockedUser{}).
		Where("(blocker_uid = ? AND blocked_uid = ?) OR (blocker_uid = ? AND blocked_uid = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
