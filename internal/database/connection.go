package database

import (
	"errors"
	"github.com/lwp3877/meetpin-server/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"os"
)

func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	// TranslateError нужен, чтобы нарушение уникальных индексов
	// приходило как gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
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
		return err
	}

	d.db = db

	return nil
}
