package services

import (
	"errors"
	"fmt"

	"github.com/selene-health/selene/internal/models"
)

var ErrInvalidSettingsInput = errors.New("invalid cycle settings")

type SettingsUserRepository interface {
	LoadCycleSettings(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

type CycleSettingsInput struct {
	CycleType      string `json:"cycle_type"`
	CycleLength    int    `json:"cycle_length"`
	CycleLengthMin int    `json:"cycle_length_min"`
	CycleLengthMax int    `json:"cycle_length_max"`
	PeriodLength   int    `json:"period_length"`
	TrackCycle     bool   `json:"track_cycle"`
}

func (service *SettingsService) GetCycleSettings(userID uint) (models.User, error) {
	return service.users.LoadCycleSettings(userID)
}

func (service *SettingsService) UpdateCycleSettings(userID uint, input CycleSettingsInput) (models.User, error) {
	if err := validateCycleSettings(input); err != nil {
		return models.User{}, err
	}

	updates := map[string]any{
		"cycle_type":    input.CycleType,
		"period_length": models.ClampPeriodLength(input.PeriodLength),
		"track_cycle":   input.TrackCycle,
	}
	switch input.CycleType {
	case models.CycleTypeRegular:
		updates["cycle_length"] = input.CycleLength
	case models.CycleTypeIrregular:
		updates["cycle_length_min"] = input.CycleLengthMin
		updates["cycle_length_max"] = input.CycleLengthMax
	}

	if err := service.users.UpdateByID(userID, updates); err != nil {
		return models.User{}, err
	}
	return service.users.LoadCycleSettings(userID)
}

func validateCycleSettings(input CycleSettingsInput) error {
	switch input.CycleType {
	case models.CycleTypeRegular:
		if !models.IsValidCycleLength(input.CycleLength) {
			return fmt.Errorf("%w: cycle length must be %d-%d", ErrInvalidSettingsInput, models.MinCycleLength, models.MaxCycleLength)
		}
	case models.CycleTypeIrregular:
		if !models.IsValidCycleLength(input.CycleLengthMin) || !models.IsValidCycleLength(input.CycleLengthMax) {
			return fmt.Errorf("%w: cycle length range must be %d-%d", ErrInvalidSettingsInput, models.MinCycleLength, models.MaxCycleLength)
		}
		if input.CycleLengthMin > input.CycleLengthMax {
			return fmt.Errorf("%w: range min above max", ErrInvalidSettingsInput)
		}
	case models.CycleTypeAbsent:
		// no length to validate
	default:
		return fmt.Errorf("%w: unknown cycle type %q", ErrInvalidSettingsInput, input.CycleType)
	}

	if !models.IsValidPeriodLength(input.PeriodLength) {
		return fmt.Errorf("%w: period length must be %d-%d", ErrInvalidSettingsInput, models.MinPeriodLength, models.MaxPeriodLength)
	}
	return nil
}
