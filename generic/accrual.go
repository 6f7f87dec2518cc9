package generic

import "time"

// =============================================================================
// CADENCE - How often a reward is granted inside a window
// =============================================================================

// Cadence counts how many times a reward is granted inside a period.
// Implementations never return a negative count.
type Cadence interface {
	Occurrences(p Period) int
}

// DailyCadence grants once per calendar day in [Start, End).
type DailyCadence struct{}

func (DailyCadence) Occurrences(p Period) int {
	return p.Days()
}

// WeeklyCadence grants once per week boundary crossed. The week the window
// opens in is not counted; a window ending exactly on WeekStart counts that
// boundary.
type WeeklyCadence struct {
	WeekStart time.Weekday
}

func (c WeeklyCadence) Occurrences(p Period) int {
	return clampZero(WeeksBetween(p.Start, p.End, c.WeekStart))
}

// MonthStartCadence grants on the 1st of every month strictly after Start
// and strictly before End. The partial month Start falls in is excluded.
type MonthStartCadence struct{}

func (MonthStartCadence) Occurrences(p Period) int {
	firsts := MonthsBetween(p.Start, p.End) - 1
	if p.End.Day() > 1 {
		// End is exclusive, so its own month's 1st is only inside the
		// window once End has moved past it.
		firsts++
	}
	return clampZero(firsts)
}

// AnchoredCadence grants once per fixed-length cycle counted from a
// known historical reset.
type AnchoredCadence struct {
	Anchor       TimePoint
	IntervalDays int
}

func (c AnchoredCadence) Occurrences(p Period) int {
	return c.Recurrence(p).Count
}

// Recurrence exposes the full projection, including days left to claim.
func (c AnchoredCadence) Recurrence(p Period) Recurrence {
	return Recur(c.Anchor, p.Start, p.End, c.IntervalDays)
}

// Compile-time checks
var (
	_ Cadence = DailyCadence{}
	_ Cadence = WeeklyCadence{}
	_ Cadence = MonthStartCadence{}
	_ Cadence = AnchoredCadence{}
)
