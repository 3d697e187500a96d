package database

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lwp3877/meetpin-server/internal/models"
)

// testDB открывает базу из TEST_DATABASE_URL и вычищает таблицы.
// Без переменной тесты пакета пропускаются: жизненный цикл заявок
// завязан на блокировки и NOW() Postgres, подменять его нечем.
func testDB(t *testing.T) *Database {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Request{},
		&models.Match{},
		&models.Message{},
		&models.BlockedUser{},
		&models.Notification{},
		&models.Report{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// порядок важен из-за внешних ключей
	for _, table := range []string{
		"messages", "matches", "notifications", "requests",
		"blocked_users", "reports", "rooms", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}

	return NewDatabase(db)
}

func createTestUser(t *testing.T, d *Database, nickname string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        uuid.NewString() + "@test.local",
		PasswordHash: "x",
		Nickname:     nickname + "-" + uuid.NewString()[:8],
		AgeRange:     "20s_late",
	}
	if err := d.SaveUser(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestRoom(t *testing.T, d *Database, host *models.User, maxPeople int, startAt time.Time) *models.Room {
	t.Helper()

	room := &models.Room{
		HostUID:   host.ID,
		Title:     "test room",
		Category:  "drink",
		Lat:       37.5,
		Lng:       127.0,
		PlaceText: "test place",
		StartAt:   startAt,
		MaxPeople: maxPeople,
	}
	if err := d.CreateRoom(room); err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func createTestRequest(t *testing.T, d *Database, room *models.Room, requester *models.User) *models.Request {
	t.Helper()

	request := &models.Request{RoomID: room.ID, RequesterUID: requester.ID}
	if err := d.CreateRequest(request); err != nil {
		t.Fatalf("create request: %v", err)
	}
	return request
}
