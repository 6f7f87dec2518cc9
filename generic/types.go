/*
Package generic provides the core accrual forecasting engine.

PURPOSE:
  This package contains domain-agnostic types and algorithms for projecting
  recurring grants onto a calendar window. Whether the grant is a daily
  login reward, a weekly point reward or a 42-day endgame season, the same
  cadences and recurrence arithmetic answer "how many times in this window".

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (e.g., 60 jades, 5 passes)
  - Unit: What is being counted

DESIGN PRINCIPLES:
  1. Purity: Nothing here reads the wall clock; "today" is always an argument
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Calendar days: All arithmetic is on civil dates, never durations

USAGE:
  p := generic.Period{Start: today, End: endDate}
  logins := generic.DailyCadence{}.Occurrences(p)
  gained := generic.NewAmountFromInt(60, "jades").Times(logins)

SEE ALSO:
  - time.go: TimePoint, Clock, calendar distances
  - accrual.go: Cadence implementations
  - recurrence.go: Anchor-based fixed-interval recurrence
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

func NewAmount(value decimal.Decimal, unit Unit) Amount {
	return Amount{Value: value, Unit: unit}
}

func NewAmountFromInt(value int64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(value), Unit: unit}
}

func ZeroAmount(unit Unit) Amount { return Amount{Value: decimal.Zero, Unit: unit} }

func (a Amount) Add(b Amount) Amount       { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount       { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Times(n int) Amount        { return Amount{Value: a.Value.Mul(decimal.NewFromInt(int64(n))), Unit: a.Unit} }
func (a Amount) IsNegative() bool          { return a.Value.IsNegative() }
func (a Amount) IsZero() bool              { return a.Value.IsZero() }
func (a Amount) Equal(b Amount) bool       { return a.Unit == b.Unit && a.Value.Equal(b.Value) }
func (a Amount) GreaterThan(b Amount) bool { return a.Value.GreaterThan(b.Value) }

// Floor returns the integer part, rounding toward negative infinity.
func (a Amount) Floor() int64 { return a.Value.Floor().IntPart() }

func (a Amount) String() string { return a.Value.String() + " " + string(a.Unit) }

// =============================================================================
// BALANCE - Starting + gained = total
// =============================================================================

// Balance is a currency position over a forecast window.
type Balance struct {
	Starting Amount
	Gained   Amount
	Total    Amount
}

// NewBalance derives Total so that Total == Starting + Gained always holds.
func NewBalance(starting, gained Amount) Balance {
	return Balance{Starting: starting, Gained: gained, Total: starting.Add(gained)}
}
