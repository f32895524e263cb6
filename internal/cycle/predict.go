package cycle

import "time"

// lutealPhaseDays is the fixed gap between ovulation and the next period
// start used by the predictor.
const lutealPhaseDays = 14

// fertileWindowLead and fertileWindowTail bound the fertile window around
// the predicted ovulation day.
const (
	fertileWindowLead = 5
	fertileWindowTail = 1
)

type PeriodForecast struct {
	Date      time.Time `json:"date"`
	DaysUntil int       `json:"days_until"`
	Overdue   bool      `json:"overdue"`
}

type OvulationForecast struct {
	Date      time.Time `json:"date"`
	DaysUntil int       `json:"days_until"`
}

type FertileWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NextPeriod predicts the first period start on or after today. The raw
// candidate anchor+cycleLength rolls forward one cycle at a time until it
// reaches today; Overdue reports whether any roll was needed, i.e. the
// originally expected period date has already passed without a new anchor
// being recorded.
func NextPeriod(anchor time.Time, cycleLength int, today time.Time) (PeriodForecast, error) {
	if anchor.IsZero() || cycleLength <= 0 {
		return PeriodForecast{}, ErrNoAnchorConfigured
	}

	day := UTCMidnight(today)
	candidate := AddDays(anchor, cycleLength)
	overdue := candidate.Before(day)
	for candidate.Before(day) {
		candidate = AddDays(candidate, cycleLength)
	}

	return PeriodForecast{
		Date:      candidate,
		DaysUntil: DaysBetween(day, candidate),
		Overdue:   overdue,
	}, nil
}

// NextOvulation predicts the first ovulation day on or after today:
// lutealPhaseDays before the next predicted period, shifted one more cycle
// when that lands in the past.
func NextOvulation(anchor time.Time, cycleLength int, today time.Time) (OvulationForecast, error) {
	period, err := NextPeriod(anchor, cycleLength, today)
	if err != nil {
		return OvulationForecast{}, err
	}

	day := UTCMidnight(today)
	ovulation := AddDays(period.Date, -lutealPhaseDays)
	if ovulation.Before(day) {
		ovulation = AddDays(ovulation, cycleLength)
	}

	return OvulationForecast{
		Date:      ovulation,
		DaysUntil: DaysBetween(day, ovulation),
	}, nil
}

// NextFertileWindow derives the inclusive fertile window around the next
// predicted ovulation.
func NextFertileWindow(anchor time.Time, cycleLength int, today time.Time) (FertileWindow, error) {
	ovulation, err := NextOvulation(anchor, cycleLength, today)
	if err != nil {
		return FertileWindow{}, err
	}
	return FertileWindow{
		Start: AddDays(ovulation.Date, -fertileWindowLead),
		End:   AddDays(ovulation.Date, fertileWindowTail),
	}, nil
}
