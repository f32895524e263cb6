package cycle

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const dayKeyLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a UTC-midnight instant.
func ParseDay(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dayKeyLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// UTCMidnight normalizes any instant to midnight of its UTC calendar day.
// Every day comparison in this package goes through it.
func UTCMidnight(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func AddDays(value time.Time, days int) time.Time {
	return UTCMidnight(value).AddDate(0, 0, days)
}

// DayRange returns the half-open [start, end) range covering the UTC day.
func DayRange(value time.Time) (time.Time, time.Time) {
	start := UTCMidnight(value)
	return start, start.AddDate(0, 0, 1)
}

// MonthRange returns the first and last UTC day of the month, inclusive.
func MonthRange(year int, month time.Month) (time.Time, time.Time, error) {
	if year < 1 || month < time.January || month > time.December {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// DateKey renders the UTC day as YYYY-MM-DD.
func DateKey(value time.Time) string {
	return UTCMidnight(value).Format(dayKeyLayout)
}

// DaysBetween counts whole days from one UTC day to another; negative when
// the target precedes the base.
func DaysBetween(from time.Time, to time.Time) int {
	return int(UTCMidnight(to).Sub(UTCMidnight(from)).Hours() / 24)
}

func SameDay(a time.Time, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
