package services

import (
	"errors"
	"time"

	"github.com/selene-health/selene/internal/cycle"
	"github.com/selene-health/selene/internal/models"
)

type CycleUserRepository interface {
	LoadCycleSettings(userID uint) (models.User, error)
}

// CycleService serves the read paths: current phase, predictions and month
// calendars. All of them are pure computations over the stored settings; a
// user without an anchor (or with tracking off) gets empty payloads rather
// than errors.
type CycleService struct {
	users CycleUserRepository
	now   func() time.Time
}

func NewCycleService(users CycleUserRepository) *CycleService {
	return &CycleService{users: users, now: time.Now}
}

type Predictions struct {
	NextPeriod    cycle.PeriodForecast    `json:"next_period"`
	NextOvulation cycle.OvulationForecast `json:"next_ovulation"`
	FertileWindow cycle.FertileWindow     `json:"fertile_window"`
}

// GetCurrentPhase resolves the phase the user stands in today. The second
// return value reports whether phase data exists at all.
func (service *CycleService) GetCurrentPhase(userID uint) (cycle.PhaseInfo, bool, error) {
	user, err := service.users.LoadCycleSettings(userID)
	if err != nil {
		return cycle.PhaseInfo{}, false, err
	}

	cycleLength := user.EffectiveCycleLength()
	if cycleLength <= 0 || user.LastPeriodStart == nil {
		return cycle.PhaseInfo{}, false, nil
	}

	info, err := cycle.CurrentPhase(
		cycle.UTCMidnight(*user.LastPeriodStart),
		cycleLength,
		models.ClampPeriodLength(user.PeriodLength),
		service.now(),
	)
	if errors.Is(err, cycle.ErrNoAnchorConfigured) {
		return cycle.PhaseInfo{}, false, nil
	}
	if err != nil {
		return cycle.PhaseInfo{}, false, err
	}
	return info, true, nil
}

// GetPredictions bundles next period, next ovulation and the fertile
// window. The second return value is false when the user has no anchor.
func (service *CycleService) GetPredictions(userID uint) (Predictions, bool, error) {
	user, err := service.users.LoadCycleSettings(userID)
	if err != nil {
		return Predictions{}, false, err
	}

	cycleLength := user.EffectiveCycleLength()
	if cycleLength <= 0 || user.LastPeriodStart == nil {
		return Predictions{}, false, nil
	}

	anchor := cycle.UTCMidnight(*user.LastPeriodStart)
	today := service.now()

	nextPeriod, err := cycle.NextPeriod(anchor, cycleLength, today)
	if err != nil {
		return Predictions{}, false, err
	}
	nextOvulation, err := cycle.NextOvulation(anchor, cycleLength, today)
	if err != nil {
		return Predictions{}, false, err
	}
	fertileWindow, err := cycle.NextFertileWindow(anchor, cycleLength, today)
	if err != nil {
		return Predictions{}, false, err
	}

	return Predictions{
		NextPeriod:    nextPeriod,
		NextOvulation: nextOvulation,
		FertileWindow: fertileWindow,
	}, true, nil
}

// GetMonthCalendar expands the per-day phase classification across a whole
// month. Users without an anchor get an empty calendar.
func (service *CycleService) GetMonthCalendar(userID uint, year int, month time.Month) (cycle.MonthCalendar, error) {
	user, err := service.users.LoadCycleSettings(userID)
	if err != nil {
		return cycle.MonthCalendar{}, err
	}

	cycleLength := user.EffectiveCycleLength()
	if cycleLength <= 0 {
		return cycle.BuildMonthCalendar(nil, 0, 0, year, month)
	}

	return cycle.BuildMonthCalendar(
		user.LastPeriodStart,
		cycleLength,
		models.ClampPeriodLength(user.PeriodLength),
		year,
		month,
	)
}
