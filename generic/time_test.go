package generic_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/jade-forecast/generic"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    generic.TimePoint
		wantErr bool
	}{
		{in: "2025-03-07", want: day(2025, time.March, 7)},
		{in: "2024-12-9", want: day(2024, time.December, 9)},
		{in: "2025-02-30", wantErr: true},
		{in: "07/03/2025", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := generic.ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s", got)
		})
	}
}

func TestTimePoint_TextRoundTrip(t *testing.T) {
	tp := day(2027, time.April, 1)

	b, err := tp.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2027-04-01", string(b))

	var back generic.TimePoint
	require.NoError(t, back.UnmarshalText(b))
	assert.True(t, back.Equal(tp))
}

func TestDayOf_DropsClockTime(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	got := generic.DayOf(time.Date(2025, time.January, 6, 23, 59, 0, 0, loc))

	assert.Equal(t, "2025-01-06", got.String())
	assert.Equal(t, time.UTC, got.Time.Location())
}

func TestDaysBetween_AcrossLeapDay(t *testing.T) {
	assert.Equal(t, 366, generic.DaysBetween(day(2024, time.January, 1), day(2025, time.January, 1)))
	assert.Equal(t, -5, generic.DaysBetween(day(2025, time.January, 10), day(2025, time.January, 5)))
}

func TestDaysBetween_BeyondDurationRange(t *testing.T) {
	// GIVEN: A window longer than time.Duration can hold
	start := day(2027, time.January, 1)
	end := day(2500, time.January, 1)

	// THEN: Day counts stay exact and agree with each other
	assert.Equal(t, 172760, generic.DaysBetween(start, end))
	assert.Equal(t, -172760, generic.DaysBetween(end, start))
	assert.Equal(t, 2932896, generic.DaysBetween(day(1970, time.January, 1), day(9999, time.December, 31)))

	p, err := generic.NewPeriod(start, end)
	require.NoError(t, err)
	assert.Equal(t, 172760, p.Days())
	assert.Equal(t, 172760, generic.DailyCadence{}.Occurrences(p))

	rec := generic.Recur(start, start, end, 42)
	assert.Equal(t, generic.Recurrence{Count: 4113, DaysRemaining: 28}, rec)
}

func TestStartOfWeek(t *testing.T) {
	// 2025-03-09 is a Sunday; the Monday-based week started on the 3rd.
	assert.Equal(t, "2025-03-03", generic.StartOfWeek(day(2025, time.March, 9), time.Monday).String())
	assert.Equal(t, "2025-03-03", generic.StartOfWeek(day(2025, time.March, 3), time.Monday).String())
	assert.Equal(t, "2025-03-09", generic.StartOfWeek(day(2025, time.March, 9), time.Sunday).String())
}

func TestFixedClock(t *testing.T) {
	var c generic.Clock = generic.FixedClock(day(2025, time.January, 1))
	assert.Equal(t, "2025-01-01", c.Today().String())
}

func TestNewPeriod_RejectsInverted(t *testing.T) {
	_, err := generic.NewPeriod(day(2025, time.January, 5), day(2025, time.January, 5))
	assert.True(t, errors.Is(err, generic.ErrInvalidRange))
	assert.True(t, generic.IsClientError(err))

	p, err := generic.NewPeriod(day(2025, time.January, 5), day(2025, time.January, 10))
	require.NoError(t, err)
	assert.True(t, p.Contains(day(2025, time.January, 9)))
	assert.False(t, p.Contains(day(2025, time.January, 10)))
}

func TestAmount_Arithmetic(t *testing.T) {
	a := generic.NewAmountFromInt(300, "stellar_jades")
	b := generic.NewAmount(decimal.RequireFromString("0.5"), "stellar_jades")

	assert.Equal(t, "300.5", a.Add(b).Value.String())
	assert.Equal(t, "1500", a.Times(5).Value.String())
	assert.Equal(t, int64(300), a.Add(b).Floor())
	assert.True(t, generic.ZeroAmount("stellar_jades").IsZero())
}

func TestBalance_TotalIsStartingPlusGained(t *testing.T) {
	b := generic.NewBalance(generic.NewAmountFromInt(1600, "stellar_jades"), generic.NewAmountFromInt(13174, "stellar_jades"))

	assert.Equal(t, "14774", b.Total.Value.String())
}

func TestValidationErrors_Unwrap(t *testing.T) {
	var err error = generic.ValidationErrors{{Field: "end_date", Code: "not_future", Message: "must be after today"}}

	assert.True(t, errors.Is(err, generic.ErrInvalidInput))
	assert.Contains(t, err.Error(), "end_date")

	var sel error = &generic.SelectorError{Field: "equilibrium", Value: "9", Max: 6}
	assert.True(t, errors.Is(sel, generic.ErrInvalidSelector))
}
