package database

import (
	"github.com/lwp3877/meetpin-server/internal/models"
)

func (d *Database) SaveReport(report *models.Report) error {
	return d.db.Create(report).Error
}
