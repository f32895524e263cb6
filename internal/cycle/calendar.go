package cycle

import "time"

type CalendarDay struct {
	Date        time.Time `json:"date"`
	DateString  string    `json:"date_string"`
	Day         int       `json:"day"`
	CycleDay    int       `json:"cycle_day"`
	Phase       Phase     `json:"phase"`
	Label       string    `json:"label"`
	IsPeriodDay bool      `json:"is_period_day"`
}

type MonthCalendar struct {
	Year      int             `json:"year"`
	Month     time.Month      `json:"month"`
	Days      []CalendarDay   `json:"days"`
	PhaseDays map[Phase][]int `json:"phase_days"`
}

// BuildMonthCalendar classifies every day of the month against the cycle
// anchored at anchor. Days before the anchor fall on the backward
// extrapolation of the configured cycle, which CycleDayOf handles through
// its Euclidean modulo, so a month entirely in the past labels the same way
// a month after the anchor does. A nil anchor yields an empty calendar.
func BuildMonthCalendar(anchor *time.Time, cycleLength int, periodLength int, year int, month time.Month) (MonthCalendar, error) {
	monthStart, monthEnd, err := MonthRange(year, month)
	if err != nil {
		return MonthCalendar{}, err
	}

	calendar := MonthCalendar{
		Year:      year,
		Month:     month,
		Days:      make([]CalendarDay, 0, 31),
		PhaseDays: make(map[Phase][]int, 4),
	}
	if anchor == nil || anchor.IsZero() || cycleLength <= 0 {
		return calendar, nil
	}

	anchorDay := UTCMidnight(*anchor)
	for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		cycleDay := CycleDayOf(day, anchorDay, cycleLength)
		phase := PhaseForCycleDay(cycleDay, cycleLength, periodLength)

		calendar.Days = append(calendar.Days, CalendarDay{
			Date:        day,
			DateString:  DateKey(day),
			Day:         day.Day(),
			CycleDay:    cycleDay,
			Phase:       phase,
			Label:       phase.Label(),
			IsPeriodDay: phase == PhaseMenstrual,
		})
		calendar.PhaseDays[phase] = append(calendar.PhaseDays[phase], day.Day())
	}

	return calendar, nil
}
