package cycle

import (
	"errors"
	"sort"
	"time"
)

// ErrReconciliationAborted is returned when rebuilding the block from logs
// would produce a future-dated period start, which would poison every
// downstream prediction.
var ErrReconciliationAborted = errors.New("reconciliation aborted: future-dated period start")

const (
	reconcileLookbackDays  = 60
	reconcileLookaheadDays = 30
)

// ReconcileBlock rebuilds the period block from period-flagged day logs
// after an edit that plain block arithmetic could not resolve. It anchors
// on the most recent period day, keeps only days within a bounded window
// around it, and grows the maximal contiguous run containing the anchor
// one day at a time. An empty input returns a zero block and no error,
// meaning the stored settings stay as they are.
func ReconcileBlock(periodDays []time.Time, today time.Time) (PeriodBlock, error) {
	if len(periodDays) == 0 {
		return PeriodBlock{}, nil
	}

	days := make([]time.Time, 0, len(periodDays))
	for _, day := range periodDays {
		days = append(days, UTCMidnight(day))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	latest := days[len(days)-1]
	windowStart := AddDays(latest, -reconcileLookbackDays)
	windowEnd := AddDays(latest, reconcileLookaheadDays)

	inWindow := make(map[string]bool, len(days))
	for _, day := range days {
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		inWindow[DateKey(day)] = true
	}

	runStart := latest
	for inWindow[DateKey(AddDays(runStart, -1))] {
		runStart = AddDays(runStart, -1)
	}
	runEnd := latest
	for inWindow[DateKey(AddDays(runEnd, 1))] {
		runEnd = AddDays(runEnd, 1)
	}

	if runStart.After(UTCMidnight(today)) {
		return PeriodBlock{}, ErrReconciliationAborted
	}

	length := DaysBetween(runStart, runEnd) + 1
	if length > maxBlockLength {
		length = maxBlockLength
		runEnd = AddDays(runStart, length-1)
	}

	return PeriodBlock{Start: runStart, End: runEnd, Length: length}, nil
}
