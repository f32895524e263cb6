package models

import "time"

const ReminderKindPeriodUpcoming = "period_upcoming"

// Reminder is an outbox row recorded by the scheduler. Delivery happens
// outside this service.
type Reminder struct {
	ID        uint      `gorm:"primaryKey"`
	PublicID  string    `gorm:"uniqueIndex;not null"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_reminder_dedup"`
	Kind      string    `gorm:"not null;uniqueIndex:uidx_reminder_dedup"`
	DueDate   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_reminder_dedup"`
	CreatedAt time.Time `gorm:"not null"`
}
