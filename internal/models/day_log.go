package models

import "time"

const (
	FlowNone   = "none"
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	PhasePeriod      = "period"
	PhaseFollicular  = "follicular"
	PhaseOvulation   = "ovulation"
	PhaseLuteal      = "luteal"
	PhaseUnspecified = "unspecified"
)

type DayLog struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"not null;uniqueIndex:uidx_user_date"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date"`
	IsPeriod bool      `gorm:"not null;default:false"`
	Phase    string    `gorm:"not null;default:unspecified"`
	Flow     string    `gorm:"not null;default:none"`
	Mood     string
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
