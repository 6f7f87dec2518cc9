/*
calculator.go - Forecast calculation

PURPOSE:
  Runs every reward source over one forecast window and assembles the
  totals and the per-source breakdown.

PURITY:
  Calculate takes "today" as an argument and never reads the clock. The
  same (request, today) always produces the same Result.

INVARIANTS:
  For each currency: Total == Starting + Gained and Gained == sum of that
  currency's steps. Every step is >= 0 when inputs are >= 0.

RANGE HANDLING:
  An end date on or before today produces zero day/week/month counts and
  zero recurrences instead of an error or negative amounts.

SEE ALSO:
  - sources.go: The source table
  - generic/recurrence.go: Anchored season arithmetic
*/
package rewards

import (
	"github.com/shopspring/decimal"
	"github.com/warp/jade-forecast/generic"
)

// =============================================================================
// BREAKDOWN
// =============================================================================

// Step is one source's contribution in one currency.
type Step struct {
	Name   StepName
	Amount generic.Amount
}

// Breakdown is the ordered, read-only list of steps.
type Breakdown struct {
	steps []Step
}

// Steps returns a copy of every step in source order.
func (b Breakdown) Steps() []Step {
	return append([]Step(nil), b.steps...)
}

// For returns the steps reported in one currency, in source order.
func (b Breakdown) For(u generic.Unit) []Step {
	var out []Step
	for _, s := range b.steps {
		if s.Amount.Unit == u {
			out = append(out, s)
		}
	}
	return out
}

// Get returns one step's amount, or zero if the source doesn't report u.
func (b Breakdown) Get(name StepName, u generic.Unit) generic.Amount {
	for _, s := range b.steps {
		if s.Name == name && s.Amount.Unit == u {
			return s.Amount
		}
	}
	return generic.ZeroAmount(u)
}

// Sum totals every step in one currency.
func (b Breakdown) Sum(u generic.Unit) generic.Amount {
	total := generic.ZeroAmount(u)
	for _, s := range b.For(u) {
		total = total.Add(s.Amount)
	}
	return total
}

// =============================================================================
// RESULT
// =============================================================================

// Pulls converts final totals to gacha draws. Display only.
type Pulls struct {
	FromJades  int64
	FromPasses int64
	Total      int64
}

// Result is the outcome of one forecast.
type Result struct {
	Period        generic.Period
	StellarJades  generic.Balance
	LimitedPasses generic.Balance
	Steps         Breakdown
	Pulls         Pulls

	recurrences map[StepName]generic.Recurrence
}

// Recurrence returns the season projection of an anchored source. ok is
// false when the source was not computed (toggled off, zero stars).
func (r Result) Recurrence(name StepName) (generic.Recurrence, bool) {
	rec, ok := r.recurrences[name]
	return rec, ok
}

// Recurrences returns a copy of all season projections.
func (r Result) Recurrences() map[StepName]generic.Recurrence {
	out := make(map[StepName]generic.Recurrence, len(r.recurrences))
	for k, v := range r.recurrences {
		out[k] = v
	}
	return out
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator forecasts with a fixed catalog. Safe for concurrent use.
type Calculator struct {
	catalog Catalog
}

// NewCalculator binds a catalog. The catalog is expected to be valid.
func NewCalculator(c Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Catalog returns the catalog in use.
func (calc *Calculator) Catalog() Catalog {
	return calc.catalog
}

var defaultCalculator = NewCalculator(DefaultCatalog())

// Calculate forecasts with the built-in catalog.
func Calculate(req Request, today generic.TimePoint) Result {
	return defaultCalculator.Calculate(req, today)
}

// Calculate forecasts req over [today, req.EndDate).
func (calc *Calculator) Calculate(req Request, today generic.TimePoint) Result {
	c := calculation{
		req:     req,
		catalog: &calc.catalog,
		period:  generic.Period{Start: today, End: req.EndDate},
	}

	var steps []Step
	recurrences := make(map[StepName]generic.Recurrence)
	for _, src := range sources {
		y := src.grant(c)
		for _, u := range src.units {
			steps = append(steps, Step{Name: src.name, Amount: y.amount(u)})
		}
		if y.recurrence != nil {
			recurrences[src.name] = *y.recurrence
		}
	}
	breakdown := Breakdown{steps: steps}

	jades := generic.NewBalance(generic.NewAmount(req.StartingJades, UnitJades), breakdown.Sum(UnitJades))
	passes := generic.NewBalance(generic.NewAmount(req.StartingPasses, UnitPasses), breakdown.Sum(UnitPasses))

	return Result{
		Period:        c.period,
		StellarJades:  jades,
		LimitedPasses: passes,
		Steps:         breakdown,
		Pulls:         calc.pulls(jades.Total, passes.Total),
		recurrences:   recurrences,
	}
}

func (calc *Calculator) pulls(jades, passes generic.Amount) Pulls {
	fromJades := jades.Value.Div(decimal.NewFromInt(calc.catalog.JadesPerPull)).Floor().IntPart()
	fromPasses := passes.Floor()
	return Pulls{FromJades: fromJades, FromPasses: fromPasses, Total: fromJades + fromPasses}
}
