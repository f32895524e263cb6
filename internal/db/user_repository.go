package db

import (
	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

// LoadCycleSettings fetches only the columns the prediction engine needs.
func (repo *UserRepository) LoadCycleSettings(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.
		Select(
			"id", "cycle_type", "cycle_length", "cycle_length_min", "cycle_length_max",
			"period_length", "track_cycle", "last_period_start", "last_period_end",
		).
		First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ListTracking returns the users the reminder scheduler walks: cycle
// tracking on and an anchor recorded.
func (repo *UserRepository) ListTracking() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("track_cycle = ? AND cycle_type <> ? AND last_period_start IS NOT NULL", true, models.CycleTypeAbsent).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
