package cycle

import (
	"errors"
	"testing"
	"time"
)

func TestCurrentPhaseDuringPeriod(t *testing.T) {
	anchor := mustDay(t, "2025-01-01")
	info, err := CurrentPhase(anchor, 28, 5, mustDay(t, "2025-01-03"))
	if err != nil {
		t.Fatalf("current phase: %v", err)
	}
	if info.Phase != PhaseMenstrual {
		t.Fatalf("expected menstrual, got %s", info.Phase)
	}
	if info.CycleDay != 3 {
		t.Fatalf("expected cycle day 3, got %d", info.CycleDay)
	}
	if info.DaysSinceAnchor != 2 {
		t.Fatalf("expected 2 days since anchor, got %d", info.DaysSinceAnchor)
	}
	if info.Label != "Menstrual" {
		t.Fatalf("unexpected label: %s", info.Label)
	}
}

func TestCurrentPhaseWrapsAfterFullCycle(t *testing.T) {
	anchor := mustDay(t, "2025-01-01")
	info, err := CurrentPhase(anchor, 28, 5, mustDay(t, "2025-01-29"))
	if err != nil {
		t.Fatalf("current phase: %v", err)
	}
	if info.CycleDay != 1 {
		t.Fatalf("expected wrap to cycle day 1, got %d", info.CycleDay)
	}
	if info.Phase != PhaseMenstrual {
		t.Fatalf("expected menstrual on wrap, got %s", info.Phase)
	}
}

func TestCurrentPhaseBeforeAnchorStaysPositive(t *testing.T) {
	anchor := mustDay(t, "2025-03-01")
	info, err := CurrentPhase(anchor, 28, 5, mustDay(t, "2025-02-27"))
	if err != nil {
		t.Fatalf("current phase: %v", err)
	}
	if info.DaysSinceAnchor != -2 {
		t.Fatalf("expected -2 days since anchor, got %d", info.DaysSinceAnchor)
	}
	if info.CycleDay != 27 {
		t.Fatalf("expected cycle day 27 via euclidean modulo, got %d", info.CycleDay)
	}
	if info.Phase != PhaseLuteal {
		t.Fatalf("expected luteal, got %s", info.Phase)
	}
}

func TestCurrentPhaseWithoutAnchor(t *testing.T) {
	_, err := CurrentPhase(time.Time{}, 28, 5, mustDay(t, "2025-01-01"))
	if !errors.Is(err, ErrNoAnchorConfigured) {
		t.Fatalf("expected ErrNoAnchorConfigured, got %v", err)
	}
}

// PhasesPartitionCycle: every cycle day in [1, cycleLength] gets exactly one
// phase, with no gaps, for the full valid input space.
func TestPhasesPartitionCycle(t *testing.T) {
	for cycleLength := 21; cycleLength <= 45; cycleLength++ {
		for periodLength := 1; periodLength <= 14; periodLength++ {
			seen := make(map[int]Phase, cycleLength)
			for cycleDay := 1; cycleDay <= cycleLength; cycleDay++ {
				phase := PhaseForCycleDay(cycleDay, cycleLength, periodLength)
				if phase == "" {
					t.Fatalf("no phase for day %d (cycle %d, period %d)", cycleDay, cycleLength, periodLength)
				}
				if _, duplicate := seen[cycleDay]; duplicate {
					t.Fatalf("day %d classified twice", cycleDay)
				}
				seen[cycleDay] = phase
			}
			if len(seen) != cycleLength {
				t.Fatalf("expected %d classified days, got %d", cycleLength, len(seen))
			}
			for day := 1; day <= periodLength && day <= cycleLength; day++ {
				if seen[day] != PhaseMenstrual {
					t.Fatalf("day %d of period should be menstrual, got %s", day, seen[day])
				}
			}
		}
	}
}

func TestOvulationWindowCentersOnMidpoint(t *testing.T) {
	cycleLength := 28
	ovulationDay := cycleLength / 2
	for day := ovulationDay - 2; day <= ovulationDay+2; day++ {
		if phase := PhaseForCycleDay(day, cycleLength, 5); phase != PhaseOvulation {
			t.Fatalf("day %d should be ovulation, got %s", day, phase)
		}
	}
	if phase := PhaseForCycleDay(ovulationDay-3, cycleLength, 5); phase != PhaseFollicular {
		t.Fatalf("day before window should be follicular, got %s", phase)
	}
	if phase := PhaseForCycleDay(ovulationDay+3, cycleLength, 5); phase != PhaseLuteal {
		t.Fatalf("day after window should be luteal, got %s", phase)
	}
}
