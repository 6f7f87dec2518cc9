package generic

import (
	"fmt"
	"time"
)

// =============================================================================
// TIME POINT - Civil calendar day (this IS a calendar-day accrual system)
// =============================================================================

// TimePoint is a calendar day. The wall-clock part is always midnight UTC so
// that day arithmetic never crosses a DST boundary.
type TimePoint struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf returns the calendar day t falls on in t's own location.
func DayOf(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// ParseDate parses "2006-01-02". Unpadded months and days ("2024-12-9")
// are accepted as well.
func ParseDate(s string) (TimePoint, error) {
	t, err := time.Parse(dateLayout, s)
	if err == nil {
		return DayOf(t), nil
	}
	t, err2 := time.Parse("2006-1-2", s)
	if err2 != nil {
		return TimePoint{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return DayOf(t), nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) TimePoint {
	tp, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return tp
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.Time.After(other.Time) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return !tp.Before(other) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint   { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }
func (tp TimePoint) AddMonths(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(0, n, 0)} }

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) Day() int              { return tp.Time.Day() }
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsZero() bool          { return tp.Time.IsZero() }

func (tp TimePoint) String() string {
	return tp.Time.Format(dateLayout)
}

// MarshalText lets TimePoint travel as "YYYY-MM-DD" in JSON and YAML.
func (tp TimePoint) MarshalText() ([]byte, error) {
	if tp.IsZero() {
		return []byte{}, nil
	}
	return []byte(tp.String()), nil
}

func (tp *TimePoint) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*tp = TimePoint{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*tp = parsed
	return nil
}

// Latest returns the later of a and b.
func Latest(a, b TimePoint) TimePoint {
	if a.After(b) {
		return a
	}
	return b
}

// =============================================================================
// CLOCK - The single source of "today"
// =============================================================================

// Clock supplies the current calendar day. Callers read it once per
// calculation and pass the value down; nothing below the boundary samples it.
type Clock interface {
	Today() TimePoint
}

// SystemClock reports today's date in the host's local time zone.
type SystemClock struct{}

func (SystemClock) Today() TimePoint { return DayOf(time.Now()) }

// FixedClock always reports the same day. Used by tests and the CLI --today flag.
type FixedClock TimePoint

func (c FixedClock) Today() TimePoint { return TimePoint(c) }

// =============================================================================
// CALENDAR DISTANCES
// =============================================================================

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts calendar days from 'from' to 'to'. Negative when to < from.
// Works on Unix seconds: time.Duration saturates after about 292 years.
func DaysBetween(from, to TimePoint) int {
	return int((to.Time.Unix() - from.Time.Unix()) / secondsPerDay)
}

// StartOfWeek returns the most recent weekStart on or before tp.
func StartOfWeek(tp TimePoint, weekStart time.Weekday) TimePoint {
	offset := (int(tp.Weekday()) - int(weekStart) + 7) % 7
	return tp.AddDays(-offset)
}

// WeeksBetween counts week boundaries crossed from 'from' to 'to', with
// weeks beginning on weekStart.
func WeeksBetween(from, to TimePoint, weekStart time.Weekday) int {
	return DaysBetween(StartOfWeek(from, weekStart), StartOfWeek(to, weekStart)) / 7
}

// MonthsBetween counts calendar months from 'from' to 'to', ignoring days.
func MonthsBetween(from, to TimePoint) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

func StartOfMonth(year int, month time.Month) TimePoint { return NewTimePoint(year, month, 1) }
