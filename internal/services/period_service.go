package services

import (
	"errors"
	"sync"
	"time"

	"github.com/selene-health/selene/internal/cycle"
	"github.com/selene-health/selene/internal/models"
)

// ErrCycleTrackingDisabled is returned for period edits on users whose
// cycle tracking is off or whose cycle type is absent.
var ErrCycleTrackingDisabled = errors.New("cycle tracking disabled")

type PeriodUserRepository interface {
	LoadCycleSettings(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type PeriodEditResult struct {
	Updated    bool               `json:"updated"`
	Reconciled bool               `json:"reconciled"`
	Block      *cycle.PeriodBlock `json:"block,omitempty"`
}

// PeriodService applies single-day period edits to a user's stored block
// and keeps the matching day log's period flag in sync. Edits for the same
// user are serialized through a keyed mutex; predictions and calendars stay
// lock-free since they only read.
type PeriodService struct {
	users  PeriodUserRepository
	logs   DayLogRepository
	window cycle.BlockWindow
	now    func() time.Time

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewPeriodService(users PeriodUserRepository, logs DayLogRepository) *PeriodService {
	return &PeriodService{
		users:  users,
		logs:   logs,
		window: cycle.DefaultBlockWindow,
		now:    time.Now,
		locks:  make(map[uint]*sync.Mutex),
	}
}

func (service *PeriodService) userLock(userID uint) *sync.Mutex {
	service.mu.Lock()
	defer service.mu.Unlock()
	lock, exists := service.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		service.locks[userID] = lock
	}
	return lock
}

// AddPeriodDay marks a calendar day as a period day, growing or restarting
// the stored block as needed.
func (service *PeriodService) AddPeriodDay(userID uint, day time.Time) (PeriodEditResult, error) {
	lock := service.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := service.users.LoadCycleSettings(userID)
	if err != nil {
		return PeriodEditResult{}, err
	}
	cycleLength := user.EffectiveCycleLength()
	if cycleLength <= 0 {
		return PeriodEditResult{}, ErrCycleTrackingDisabled
	}

	block := blockFromSettings(&user)
	change := block.AddDay(day, cycleLength, service.window)

	if change.Updated {
		if err := service.persistBlock(userID, change.Block); err != nil {
			return PeriodEditResult{}, err
		}
	}
	if err := service.setPeriodFlag(userID, day, true); err != nil {
		return PeriodEditResult{}, err
	}

	result := PeriodEditResult{Updated: change.Updated}
	final := change.Block
	if !final.IsZero() {
		result.Block = &final
	}
	return result, nil
}

// RemovePeriodDay clears a period day. Boundary days shrink the block
// directly; a middle day leaves the arithmetic ambiguous, so the block is
// rebuilt from the remaining period-flagged day logs. A rebuild that would
// plant the anchor in the future is abandoned and the stored settings stay
// untouched.
func (service *PeriodService) RemovePeriodDay(userID uint, day time.Time) (PeriodEditResult, error) {
	lock := service.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := service.users.LoadCycleSettings(userID)
	if err != nil {
		return PeriodEditResult{}, err
	}
	cycleLength := user.EffectiveCycleLength()
	if cycleLength <= 0 {
		return PeriodEditResult{}, ErrCycleTrackingDisabled
	}

	block := blockFromSettings(&user)
	change := block.RemoveDay(day, cycleLength, service.window)

	if !change.Updated && !change.Ambiguous {
		// Either a single-day block refusing to empty or a day outside the
		// block entirely; nothing to persist, the flag stays as-is.
		result := PeriodEditResult{Updated: false}
		if !block.IsZero() {
			result.Block = &block
		}
		return result, nil
	}

	if err := service.setPeriodFlag(userID, day, false); err != nil {
		return PeriodEditResult{}, err
	}

	if change.Updated {
		if err := service.persistBlock(userID, change.Block); err != nil {
			return PeriodEditResult{}, err
		}
		final := change.Block
		return PeriodEditResult{Updated: true, Block: &final}, nil
	}

	return service.reconcileFromLogs(userID, block)
}

func (service *PeriodService) reconcileFromLogs(userID uint, previous cycle.PeriodBlock) (PeriodEditResult, error) {
	logs, err := service.logs.ListPeriodDays(userID)
	if err != nil {
		return PeriodEditResult{}, err
	}

	periodDays := make([]time.Time, 0, len(logs))
	for _, entry := range logs {
		periodDays = append(periodDays, entry.Date)
	}

	rebuilt, err := cycle.ReconcileBlock(periodDays, service.now())
	if err != nil {
		result := PeriodEditResult{Updated: false}
		if !previous.IsZero() {
			result.Block = &previous
		}
		return result, err
	}
	if rebuilt.IsZero() {
		result := PeriodEditResult{Updated: false}
		if !previous.IsZero() {
			result.Block = &previous
		}
		return result, nil
	}

	if err := service.persistBlock(userID, rebuilt); err != nil {
		return PeriodEditResult{}, err
	}
	return PeriodEditResult{Updated: true, Reconciled: true, Block: &rebuilt}, nil
}

func (service *PeriodService) persistBlock(userID uint, block cycle.PeriodBlock) error {
	return service.users.UpdateByID(userID, map[string]any{
		"last_period_start": block.Start,
		"last_period_end":   block.End,
		"period_length":     models.ClampPeriodLength(block.Length),
	})
}

// setPeriodFlag flips the day log's period marker without touching mood,
// flow or notes.
func (service *PeriodService) setPeriodFlag(userID uint, day time.Time, isPeriod bool) error {
	dayStart, dayEnd := cycle.DayRange(day)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	phase := models.PhaseUnspecified
	if isPeriod {
		phase = models.PhasePeriod
	}

	if found {
		if entry.IsPeriod == isPeriod {
			return nil
		}
		entry.IsPeriod = isPeriod
		entry.Phase = phase
		return service.logs.Save(&entry)
	}
	if !isPeriod {
		return nil
	}

	entry = models.DayLog{
		UserID:   userID,
		Date:     dayStart,
		IsPeriod: true,
		Phase:    models.PhasePeriod,
		Flow:     models.FlowNone,
	}
	return service.logs.Create(&entry)
}

func blockFromSettings(user *models.User) cycle.PeriodBlock {
	if user.LastPeriodStart == nil || user.LastPeriodEnd == nil {
		return cycle.PeriodBlock{}
	}
	return cycle.PeriodBlock{
		Start:  cycle.UTCMidnight(*user.LastPeriodStart),
		End:    cycle.UTCMidnight(*user.LastPeriodEnd),
		Length: user.PeriodLength,
	}
}
