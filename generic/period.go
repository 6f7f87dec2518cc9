package generic

import "fmt"

// =============================================================================
// PERIOD - The forecast window
// =============================================================================

// Period is the half-open forecast window [Start, End). Start is "today",
// End is the user's chosen end date, which is never itself rewarded.
//
// Examples:
//   - 2025-01-05 .. 2025-01-10: five daily logins (5th through 9th)
//   - 2025-02-14 .. 2025-03-01: no month start inside the window
type Period struct {
	Start TimePoint
	End   TimePoint
}

// NewPeriod builds a window and rejects one whose end is not after its start.
func NewPeriod(start, end TimePoint) (Period, error) {
	p := Period{Start: start, End: end}
	if !p.IsValid() {
		return p, fmt.Errorf("%w: %s", ErrInvalidRange, p)
	}
	return p, nil
}

// IsValid reports whether End is strictly after Start.
func (p Period) IsValid() bool {
	return p.End.After(p.Start)
}

// Contains returns true if the time point is within [Start, End).
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.Before(p.End)
}

// Days returns the number of calendar days in the window, never negative.
func (p Period) Days() int {
	return clampZero(DaysBetween(p.Start, p.End))
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + ")"
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
