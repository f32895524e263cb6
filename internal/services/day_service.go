package services

import (
	"errors"
	"time"

	"github.com/selene-health/selene/internal/cycle"
	"github.com/selene-health/selene/internal/models"
)

var (
	ErrDayEntryLoadFailed   = errors.New("load day entry failed")
	ErrDayEntryCreateFailed = errors.New("create day entry failed")
	ErrDayEntryUpdateFailed = errors.New("update day entry failed")
)

type DayEntryInput struct {
	Flow  string `json:"flow"`
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

type DayLogRepository interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.DayLog, error)
	ListPeriodDays(userID uint) ([]models.DayLog, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DayLog, bool, error)
	Create(entry *models.DayLog) error
	Save(entry *models.DayLog) error
}

type DayService struct {
	logs DayLogRepository
}

func NewDayService(logs DayLogRepository) *DayService {
	return &DayService{logs: logs}
}

func (service *DayService) FetchLogsForUser(userID uint, from time.Time, to time.Time) ([]models.DayLog, error) {
	fromStart, _ := cycle.DayRange(from)
	_, toEnd := cycle.DayRange(to)
	return service.logs.ListByUserRange(userID, &fromStart, &toEnd)
}

func (service *DayService) FetchLogByDate(userID uint, day time.Time) (models.DayLog, error) {
	dayStart, dayEnd := cycle.DayRange(day)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DayLog{}, err
	}
	if !found {
		return models.DayLog{
			UserID: userID,
			Date:   dayStart,
			Flow:   models.FlowNone,
			Phase:  models.PhaseUnspecified,
		}, nil
	}
	return entry, nil
}

// UpsertDayEntry stores mood, flow and notes for a day. It never touches
// the period flag; that belongs to the period mutation path.
func (service *DayService) UpsertDayEntry(userID uint, day time.Time, payload DayEntryInput) (models.DayLog, error) {
	dayStart, dayEnd := cycle.DayRange(day)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DayLog{}, ErrDayEntryLoadFailed
	}

	flow := payload.Flow
	if flow == "" {
		flow = models.FlowNone
	}

	if found {
		entry.Flow = flow
		entry.Mood = payload.Mood
		entry.Notes = payload.Notes
		if err := service.logs.Save(&entry); err != nil {
			return models.DayLog{}, ErrDayEntryUpdateFailed
		}
		return entry, nil
	}

	entry = models.DayLog{
		UserID: userID,
		Date:   dayStart,
		Flow:   flow,
		Mood:   payload.Mood,
		Notes:  payload.Notes,
		Phase:  models.PhaseUnspecified,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.DayLog{}, ErrDayEntryCreateFailed
	}
	return entry, nil
}
