package database

import (
	"time"

	"github.com/lwp3877/meetpin-server/internal/geo"
	"github.com/lwp3877/meetpin-server/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateRoom(room *models.Room) error {
	return d.db.Create(room).Error
}

func (d *Database) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	if err := d.db.Preload("Host").First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// ListRooms возвращает публичные будущие комнаты внутри bbox.
// Сортировка: активный буст вперёд (раньше истекает — выше), затем
// ближайшее время старта.
func (d *Database) ListRooms(box *geo.BBox, category string, limit, offset int) ([]models.Room, int64, error) {
	now := time.Now()

	base := d.db.Model(&models.Room{}).
		Where("visibility = ?", "public").
		Where("start_at >= ?", now).
		Where("lat BETWEEN ? AND ?", box.South, box.North).
		Where("lng BETWEEN ? AND ?", box.West, box.East)

	if category != "" {
		base = base.Where("category = ?", category)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// ключ буста обнуляется для истёкших, иначе старый boost_until
	// перебивал бы start_at внутри небустнутой группы
	var rooms []models.Room
	err := base.Session(&gorm.Session{}).
		Order("CASE WHEN boost_until IS NOT NULL AND boost_until > NOW() THEN 0 ELSE 1 END").
		Order("CASE WHEN boost_until > NOW() THEN boost_until END ASC NULLS LAST").
		Order("start_at ASC").
		Limit(limit).
		Offset(offset).
		Preload("Host").
		Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

func (d *Database) ListRoomsByHost(hostUID string) ([]models.Room, error) {
	var rooms []models.Room
	err := d.db.Where("host_uid = ?", hostUID).Order("start_at ASC").Find(&rooms).Error
	return rooms, err
}

func (d *Database) UpdateRoom(room *models.Room) error {
	return d.db.Save(room).Error
}

func (d *Database) DeleteRoom(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Request{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Room{}, "id = ?", id).Error
	})
}
