package db

import (
	"time"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return repo.database.Create(reminder).Error
}

// Exists reports whether a reminder of the same kind for the same due date
// has already been recorded for the user.
func (repo *ReminderRepository) Exists(userID uint, kind string, dueDate time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Reminder{}).
		Where("user_id = ? AND kind = ? AND due_date = ?", userID, kind, dueDate).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ReminderRepository) ListByUser(userID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("due_date ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}
