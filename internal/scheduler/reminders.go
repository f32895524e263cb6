package scheduler

import (
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/selene-health/selene/internal/cycle"
	"github.com/selene-health/selene/internal/models"
)

// TrackingUserSource lists the users whose upcoming periods are worth
// reminding about.
type TrackingUserSource interface {
	ListTracking() ([]models.User, error)
}

// ReminderStore records reminders and answers dedup checks.
type ReminderStore interface {
	Exists(userID uint, kind string, dueDate time.Time) (bool, error)
	Create(reminder *models.Reminder) error
}

// ReminderScheduler periodically scans tracking users and records an
// upcoming-period reminder for each one whose predicted start falls within
// the configured lead window.
type ReminderScheduler struct {
	users     TrackingUserSource
	reminders ReminderStore
	leadDays  int
	log       *logrus.Entry
	now       func() time.Time

	cron *cron.Cron
}

func NewReminderScheduler(users TrackingUserSource, reminders ReminderStore, leadDays int, log *logrus.Entry) *ReminderScheduler {
	return &ReminderScheduler{
		users:     users,
		reminders: reminders,
		leadDays:  leadDays,
		log:       log,
		now:       time.Now,
	}
}

// Start registers the scan on the given cron expression and launches the
// scheduler. One scan also runs immediately so a restart never silently
// skips a due reminder.
func (scheduler *ReminderScheduler) Start(cronSpec string) error {
	runner := cron.New()
	if _, err := runner.AddFunc(cronSpec, scheduler.RunOnce); err != nil {
		return err
	}
	scheduler.cron = runner
	runner.Start()

	go scheduler.RunOnce()
	scheduler.log.WithField("cron", cronSpec).Info("reminder scheduler started")
	return nil
}

// Stop halts the cron runner and waits for an in-flight scan to finish.
func (scheduler *ReminderScheduler) Stop() {
	if scheduler.cron == nil {
		return
	}
	<-scheduler.cron.Stop().Done()
	scheduler.log.Info("reminder scheduler stopped")
}

// RunOnce performs a single scan. Failures for one user are logged and do
// not stop the scan for the rest.
func (scheduler *ReminderScheduler) RunOnce() {
	users, err := scheduler.users.ListTracking()
	if err != nil {
		scheduler.log.WithError(err).Error("list tracking users failed")
		return
	}

	today := cycle.UTCMidnight(scheduler.now())
	created := 0
	for _, user := range users {
		recorded, err := scheduler.scanUser(user, today)
		if err != nil {
			scheduler.log.WithError(err).WithField("user_id", user.ID).Error("reminder scan failed")
			continue
		}
		if recorded {
			created++
		}
	}

	scheduler.log.WithFields(logrus.Fields{
		"users":   len(users),
		"created": created,
	}).Debug("reminder scan finished")
}

func (scheduler *ReminderScheduler) scanUser(user models.User, today time.Time) (bool, error) {
	cycleLength := user.EffectiveCycleLength()
	if cycleLength == 0 || user.LastPeriodStart == nil {
		return false, nil
	}

	forecast, err := cycle.NextPeriod(*user.LastPeriodStart, cycleLength, today)
	if err != nil {
		return false, err
	}
	if forecast.DaysUntil > scheduler.leadDays {
		return false, nil
	}

	exists, err := scheduler.reminders.Exists(user.ID, models.ReminderKindPeriodUpcoming, forecast.Date)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	reminder := models.Reminder{
		PublicID: uuid.NewString(),
		UserID:   user.ID,
		Kind:     models.ReminderKindPeriodUpcoming,
		DueDate:  forecast.Date,
	}
	if err := scheduler.reminders.Create(&reminder); err != nil {
		return false, err
	}

	scheduler.log.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"due_date":   cycle.DateKey(forecast.Date),
		"days_until": forecast.DaysUntil,
	}).Info("period reminder recorded")
	return true, nil
}
