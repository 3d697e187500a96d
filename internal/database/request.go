package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lwp3877/meetpin-server/internal/apperr"
	"github.com/lwp3877/meetpin-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Дедлайны заявок: подача закрывается за час до старта, чтобы хост
// успел решить; принятие — финальное обязательство — допускается
// ближе, до 30 минут.
const (
	CreateCutoff = time.Hour
	AcceptCutoff = 30 * time.Minute
)

func (d *Database) CreateRequest(request *models.Request) error {
	if err := d.db.Create(request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("you already requested to join this room")
		}
		return err
	}
	return nil
}

func (d *Database) GetRequest(id string) (*models.Request, error) {
	var request models.Request
	if err := d.db.Preload("Room").Preload("Room.Host").Preload("Requester").First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (d *Database) CountAcceptedRequests(roomID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Request{}).
		Where("room_id = ? AND status = ?", roomID, models.RequestAccepted).
		Count(&count).Error
	return count, err
}

// ListOutgoingRequests заявки, отправленные пользователем
func (d *Database) ListOutgoingRequests(requesterUID uuid.UUID, limit, offset int) ([]models.Request, int64, error) {
	query := d.db.Model(&models.Request{}).Where("requester_uid = ?", requesterUID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.Request
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Room").
		Preload("Room.Host").
		Preload("Requester").
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListIncomingRequests заявки во все комнаты, где пользователь хост
func (d *Database) ListIncomingRequests(hostUID uuid.UUID, limit, offset int) ([]models.Request, int64, error) {
	query := d.db.Model(&models.Request{}).
		Joins("JOIN rooms ON rooms.id = requests.room_id").
		Where("rooms.host_uid = ?", hostUID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.Request
	err := query.Session(&gorm.Session{}).
		Order("requests.created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Room").
		Preload("Room.Host").
		Preload("Requester").
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// RejectRequest переводит pending-заявку в rejected. Ноль затронутых
// строк означает, что заявку успели обработать параллельно.
func (d *Database) RejectRequest(id uuid.UUID) error {
	result := d.db.Model(&models.Request{}).
		Where("id = ? AND status = ?", id, models.RequestPending).
		Update("status", models.RequestRejected)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.Conflict("request was already handled")
	}
	return nil
}

// AcceptRequest принимает заявку и создаёт матч одной транзакцией.
// Строка комнаты берётся под FOR UPDATE, поэтому пересчёт принятых
// заявок сериализован: из двух конкурирующих принятий последнего
// места второе получает Full. Падение вставки матча откатывает и
// смену статуса — принятая заявка без матча невозможна.
func (d *Database) AcceptRequest(id uuid.UUID) (*models.Match, error) {
	var match models.Match

	err := d.db.Transaction(func(tx *gorm.DB) error {
		var request models.Request
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			return err
		}
		if request.Status != models.RequestPending {
			return apperr.Conflict("request was already handled")
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "id = ?", request.RoomID).Error; err != nil {
			return err
		}

		if time.Now().After(room.StartAt.Add(-AcceptCutoff)) {
			return apperr.Gone("the accept deadline for this room has passed")
		}

		// хост занимает одно место
		var accepted int64
		if err := tx.Model(&models.Request{}).
			Where("room_id = ? AND status = ?", room.ID, models.RequestAccepted).
			Count(&accepted).Error; err != nil {
			return err
		}
		if accepted >= int64(room.MaxPeople-1) {
			return apperr.Full("this room is full")
		}

		// повторное принятие: матч уже существует, считаем выполненным
		var existing int64
		if err := tx.Model(&models.Match{}).
			Where("room_id = ? AND guest_uid = ?", room.ID, request.RequesterUID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return tx.First(&match, "room_id = ? AND guest_uid = ?", room.ID, request.RequesterUID).Error
		}

		result := tx.Model(&models.Request{}).
			Where("id = ? AND status = ?", request.ID, models.RequestPending).
			Update("status", models.RequestAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.Conflict("request was already handled")
		}

		match = models.Match{
			RoomID:   room.ID,
			HostUID:  room.HostUID,
			GuestUID: request.RequesterUID,
		}
		return tx.Create(&match).Error
	})
	if err != nil {
		return nil, err
	}

	return &match, nil
}

// DeleteRequest отзывает pending-заявку; удалять может только её автор
func (d *Database) DeleteRequest(id uuid.UUID) error {
	result := d.db.Delete(&models.Request{}, "id = ? AND status = ?", id, models.RequestPending)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.Conflict("request was already handled")
	}
	return nil
}
