package cycle

import (
	"errors"
	"time"
)

// ErrNoAnchorConfigured signals a phase or prediction request for a user
// without a recorded period start. Callers translate it into an empty
// payload, not a failure.
var ErrNoAnchorConfigured = errors.New("no period anchor configured")

type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulation  Phase = "ovulation"
	PhaseLuteal     Phase = "luteal"
)

func (phase Phase) Label() string {
	switch phase {
	case PhaseMenstrual:
		return "Menstrual"
	case PhaseFollicular:
		return "Follicular"
	case PhaseOvulation:
		return "Ovulation"
	case PhaseLuteal:
		return "Luteal"
	default:
		return "Unknown"
	}
}

type PhaseInfo struct {
	Phase           Phase  `json:"phase"`
	Label           string `json:"label"`
	CycleDay        int    `json:"cycle_day"`
	DaysSinceAnchor int    `json:"days_since_anchor"`
}

// CycleDayOf maps a day onto its 1-based position within the cycle anchored
// at anchor. The modulo is Euclidean, so days before the anchor land on the
// backward extrapolation of the same cycle instead of going negative.
func CycleDayOf(day time.Time, anchor time.Time, cycleLength int) int {
	offset := DaysBetween(anchor, day) % cycleLength
	if offset < 0 {
		offset += cycleLength
	}
	return offset + 1
}

// PhaseForCycleDay classifies a cycle day. Ovulation day sits at the cycle
// midpoint with a two-day tolerance on both sides; the period wins over
// everything, the remainder splits into follicular before the ovulation
// window and luteal after it.
func PhaseForCycleDay(cycleDay int, cycleLength int, periodLength int) Phase {
	ovulationDay := cycleLength / 2
	switch {
	case cycleDay >= 1 && cycleDay <= periodLength:
		return PhaseMenstrual
	case cycleDay > periodLength && cycleDay < ovulationDay-2:
		return PhaseFollicular
	case cycleDay >= ovulationDay-2 && cycleDay <= ovulationDay+2:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

// CurrentPhase computes the phase standing on referenceDay for a cycle
// anchored at the last period start.
func CurrentPhase(anchor time.Time, cycleLength int, periodLength int, referenceDay time.Time) (PhaseInfo, error) {
	if anchor.IsZero() {
		return PhaseInfo{}, ErrNoAnchorConfigured
	}
	if cycleLength <= 0 {
		return PhaseInfo{}, ErrNoAnchorConfigured
	}

	daysSinceAnchor := DaysBetween(anchor, referenceDay)
	cycleDay := CycleDayOf(referenceDay, anchor, cycleLength)
	phase := PhaseForCycleDay(cycleDay, cycleLength, periodLength)

	return PhaseInfo{
		Phase:           phase,
		Label:           phase.Label(),
		CycleDay:        cycleDay,
		DaysSinceAnchor: daysSinceAnchor,
	}, nil
}
