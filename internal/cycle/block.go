package cycle

import "time"

const maxBlockLength = 14

// PeriodBlock is the contiguous run of days covering the current or most
// recent period. It is a value: transitions return a new block and never
// mutate in place, the persistence layer applies the result atomically.
type PeriodBlock struct {
	Start  time.Time
	End    time.Time
	Length int
}

func (block PeriodBlock) IsZero() bool {
	return block.Start.IsZero() || block.End.IsZero() || block.Length <= 0
}

func NewBlock(day time.Time) PeriodBlock {
	start := UTCMidnight(day)
	return PeriodBlock{Start: start, End: start, Length: 1}
}

// BlockWindow bounds how many cycle-length multiples of the block are
// considered when matching an edited day. Checking the neighbors one cycle
// back and up to two cycles forward tolerates cycle-length drift between
// the stored block and the day being edited.
type BlockWindow struct {
	Lookback  int
	Lookahead int
}

var DefaultBlockWindow = BlockWindow{Lookback: 1, Lookahead: 2}

type BlockChange struct {
	Block     PeriodBlock
	Updated   bool
	Ambiguous bool
}

// AddDay folds a newly marked period day into the block. A day already
// covered by the block or one of its cycle-shifted images is a no-op; a day
// adjacent to a boundary extends the block on that side; a fully
// disconnected day starts a fresh single-day block, the same way the very
// first recorded period day does.
func (block PeriodBlock) AddDay(day time.Time, cycleLength int, window BlockWindow) BlockChange {
	day = UTCMidnight(day)
	if block.IsZero() {
		return BlockChange{Block: NewBlock(day), Updated: true}
	}

	for k := -window.Lookback; k <= window.Lookahead; k++ {
		shiftedStart := AddDays(block.Start, k*cycleLength)
		shiftedEnd := AddDays(block.End, k*cycleLength)
		if !day.Before(shiftedStart) && !day.After(shiftedEnd) {
			return BlockChange{Block: block, Updated: false}
		}
	}

	for k := -window.Lookback; k <= window.Lookahead; k++ {
		shiftedStart := AddDays(block.Start, k*cycleLength)
		shiftedEnd := AddDays(block.End, k*cycleLength)

		if SameDay(day, AddDays(shiftedStart, -1)) {
			if block.Length >= maxBlockLength {
				return BlockChange{Block: block, Updated: false}
			}
			extended := PeriodBlock{
				Start:  AddDays(block.Start, -1),
				End:    block.End,
				Length: block.Length + 1,
			}
			return BlockChange{Block: extended, Updated: true}
		}

		if SameDay(day, AddDays(shiftedEnd, 1)) {
			if block.Length >= maxBlockLength {
				return BlockChange{Block: block, Updated: false}
			}
			extended := PeriodBlock{
				Start:  block.Start,
				End:    AddDays(block.End, 1),
				Length: block.Length + 1,
			}
			return BlockChange{Block: extended, Updated: true}
		}
	}

	return BlockChange{Block: NewBlock(day), Updated: true}
}

// RemoveDay takes a period day out of the block. Only boundary days shrink
// the block directly; removing a middle day leaves the block split in two,
// which single-block arithmetic cannot represent, so the change comes back
// Ambiguous and the caller rebuilds the block from the day logs instead. A
// single-day block refuses removal so the anchor never empties.
func (block PeriodBlock) RemoveDay(day time.Time, cycleLength int, window BlockWindow) BlockChange {
	day = UTCMidnight(day)
	if block.IsZero() || block.Length <= 1 {
		return BlockChange{Block: block, Updated: false}
	}

	for k := -window.Lookback; k <= window.Lookahead; k++ {
		shiftedStart := AddDays(block.Start, k*cycleLength)
		shiftedEnd := AddDays(block.End, k*cycleLength)

		if SameDay(day, shiftedStart) {
			shrunk := PeriodBlock{
				Start:  AddDays(block.Start, 1),
				End:    block.End,
				Length: block.Length - 1,
			}
			return BlockChange{Block: shrunk, Updated: true}
		}
		if SameDay(day, shiftedEnd) {
			shrunk := PeriodBlock{
				Start:  block.Start,
				End:    AddDays(block.End, -1),
				Length: block.Length - 1,
			}
			return BlockChange{Block: shrunk, Updated: true}
		}
		if day.After(shiftedStart) && day.Before(shiftedEnd) {
			return BlockChange{Block: block, Updated: false, Ambiguous: true}
		}
	}

	return BlockChange{Block: block, Updated: false}
}
