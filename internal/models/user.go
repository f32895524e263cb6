package models

import "time"

const (
	CycleTypeRegular   = "regular"
	CycleTypeIrregular = "irregular"
	CycleTypeAbsent    = "absent"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 21
	MaxCycleLength  = 45
	MinPeriodLength = 1
	MaxPeriodLength = 14
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	CycleType      string `gorm:"not null;default:regular"`
	CycleLength    int    `gorm:"not null;default:28"`
	CycleLengthMin int    `gorm:"not null;default:0"`
	CycleLengthMax int    `gorm:"not null;default:0"`
	PeriodLength   int    `gorm:"not null;default:5"`
	TrackCycle     bool   `gorm:"not null;default:true"`

	LastPeriodStart *time.Time `gorm:"type:date"`
	LastPeriodEnd   *time.Time `gorm:"type:date"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// EffectiveCycleLength resolves the length used by all predictions: the
// configured value for regular cycles, the rounded range midpoint for
// irregular ones. Returns 0 when the cycle is absent or tracking is off,
// which callers treat as "engine inert".
func (user *User) EffectiveCycleLength() int {
	if !user.TrackCycle || user.CycleType == CycleTypeAbsent {
		return 0
	}
	if user.CycleType == CycleTypeIrregular && user.CycleLengthMin > 0 && user.CycleLengthMax > 0 {
		return int(float64(user.CycleLengthMin+user.CycleLengthMax)/2 + 0.5)
	}
	if user.CycleLength > 0 {
		return user.CycleLength
	}
	return DefaultCycleLength
}

func IsValidCycleLength(value int) bool {
	return value >= MinCycleLength && value <= MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= MinPeriodLength && value <= MaxPeriodLength
}

func ClampPeriodLength(value int) int {
	if value < MinPeriodLength {
		return MinPeriodLength
	}
	if value > MaxPeriodLength {
		return MaxPeriodLength
	}
	return value
}
