package generic

// =============================================================================
// RECURRENCE - Fixed-interval resets anchored to a known past occurrence
// =============================================================================

// Recurrence is the result of projecting a fixed-interval reset onto a window.
type Recurrence struct {
	// Count is the number of claimable occurrences in the window, including
	// the one already running at the window start.
	Count int `json:"count"`

	// DaysRemaining is the number of days left to claim the occurrence
	// following the last counted one. Zero means the deadline is today.
	// Display only; it never feeds totals.
	DaysRemaining int `json:"days_remaining"`
}

// Recur counts the occurrences of an event that resets every intervalDays
// days, given one known reset date (anchor), between start and the
// exclusive end.
//
// When the anchor predates start it is rolled forward to the latest reset
// on or before start, and the days already spent inside that running cycle
// are carried into the window: a player can still finish the cycle that is
// open today.
//
// intervalDays must be positive.
func Recur(anchor, start, end TimePoint, intervalDays int) Recurrence {
	latest := anchor
	carried := 0

	if anchor.Before(start) {
		elapsed := DaysBetween(anchor, start)
		latest = anchor.AddDays(elapsed / intervalDays * intervalDays)
		carried = elapsed % intervalDays
	}

	window := DaysBetween(Latest(latest, start), end) + carried

	// Unreachable inside the window, or the window is inverted.
	if latest.After(end) || window < 0 {
		return Recurrence{Count: 0, DaysRemaining: window}
	}

	return Recurrence{
		Count:         window / intervalDays,
		DaysRemaining: intervalDays - window%intervalDays,
	}
}
