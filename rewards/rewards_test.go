package rewards_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/rewards"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) generic.TimePoint {
	return generic.NewTimePoint(year, month, day)
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// baseRequest has every optional source off.
func baseRequest(end generic.TimePoint) rewards.Request {
	return rewards.Request{
		StartingJades:  decimal.Zero,
		StartingPasses: decimal.Zero,
		Equilibrium:    rewards.MaxEquilibriumLevel,
		AdditionalSources: []rewards.AdditionalSource{
			{Name: "", Jades: decimal.Zero, Passes: decimal.Zero},
		},
		EndDate: end,
	}
}

func assertAmount(t *testing.T, want int64, got generic.Amount, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Value.Equal(dec(want)), append([]any{"want %d, got %s", want, got.Value}, msgAndArgs...)...)
}

func assertStep(t *testing.T, r rewards.Result, name rewards.StepName, u generic.Unit, want int64) {
	t.Helper()
	got := r.Steps.Get(name, u)
	assert.True(t, got.Value.Equal(dec(want)), "%s/%s: want %d, got %s", name, u, want, got.Value)
}

func assertBalance(t *testing.T, b generic.Balance, starting, gained, total int64) {
	t.Helper()
	assertAmount(t, starting, b.Starting, "starting")
	assertAmount(t, gained, b.Gained, "gained")
	assertAmount(t, total, b.Total, "total")
}

// =============================================================================
// DAILIES
// =============================================================================

func TestDailies_FiveDays(t *testing.T) {
	// GIVEN: Today is 2025-01-05, every optional source off
	// WHEN: Forecasting to 2025-01-10 (exclusive)
	// THEN: 5 logins of 60 jades

	r := rewards.Calculate(baseRequest(date(2025, time.January, 10)), date(2025, time.January, 5))

	assertBalance(t, r.StellarJades, 0, 300, 300)
	assertStep(t, r, rewards.StepDailies, rewards.UnitJades, 300)
}

func TestDailies_FiveDaysWithExpressSupply(t *testing.T) {
	req := baseRequest(date(2025, time.January, 10))
	req.ExpressSupplyPass = true

	r := rewards.Calculate(req, date(2025, time.January, 5))

	assertBalance(t, r.StellarJades, 0, 750, 750)
	assertStep(t, r, rewards.StepDailies, rewards.UnitJades, 300)
	assertStep(t, r, rewards.StepExpressSupply, rewards.UnitJades, 450)
}

func TestDailies_ThirtyDaysAcrossFebruary(t *testing.T) {
	req := baseRequest(date(2025, time.March, 7))
	req.ExpressSupplyPass = true

	r := rewards.Calculate(req, date(2025, time.February, 6))

	assertStep(t, r, rewards.StepDailies, rewards.UnitJades, 1740)
	assertStep(t, r, rewards.StepExpressSupply, rewards.UnitJades, 2610)
	assertBalance(t, r.StellarJades, 0, 4350, 4350)
}

// =============================================================================
// ENDGAME
// =============================================================================

func TestEndgame_LastDayOfSeasonStillCounts(t *testing.T) {
	today := date(2025, time.January, 6)
	end := date(2025, time.January, 7)

	tests := []struct {
		name  string
		today generic.TimePoint
		end   generic.TimePoint
		set   func(r *rewards.Request, tier rewards.StarTier)
		step  rewards.StepName
	}{
		{"memory of chaos", today, end, func(r *rewards.Request, s rewards.StarTier) { r.MemoryOfChaosStars = s }, rewards.StepMemoryOfChaos},
		{"pure fiction", date(2025, time.February, 2), date(2025, time.February, 3), func(r *rewards.Request, s rewards.StarTier) { r.PureFictionStars = s }, rewards.StepPureFiction},
		{"apocalyptic shadow", date(2025, time.January, 19), date(2025, time.January, 20), func(r *rewards.Request, s rewards.StarTier) { r.ApocalypticShadowStars = s }, rewards.StepApocalypticShadow},
	}

	for _, tt := range tests {
		for _, tier := range []struct {
			stars  rewards.StarTier
			amount int64
		}{{7, 420}, {12, 800}} {
			t.Run(fmt.Sprintf("%s %d stars", tt.name, tier.stars), func(t *testing.T) {
				req := baseRequest(tt.end)
				tt.set(&req, tier.stars)

				r := rewards.Calculate(req, tt.today)

				assertStep(t, r, rewards.StepDailies, rewards.UnitJades, 60)
				assertStep(t, r, tt.step, rewards.UnitJades, tier.amount)
				assertBalance(t, r.StellarJades, 0, 60+tier.amount, 60+tier.amount)

				rec, ok := r.Recurrence(tt.step)
				require.True(t, ok)
				assert.Equal(t, 1, rec.Count)
			})
		}
	}
}

func TestEndgame_ZeroStarsSkipsMode(t *testing.T) {
	r := rewards.Calculate(baseRequest(date(2025, time.March, 1)), date(2025, time.January, 1))

	for _, step := range []rewards.StepName{rewards.StepMemoryOfChaos, rewards.StepPureFiction, rewards.StepApocalypticShadow} {
		assertStep(t, r, step, rewards.UnitJades, 0)
		_, ok := r.Recurrence(step)
		assert.False(t, ok, "%s should not be projected", step)
	}
}

// The per-mode star tables are carried in the catalog, but every mode pays
// from the shared table. Kept as observed; whether the per-mode tables were
// meant to be used is unconfirmed.
func TestEndgame_ModesShareOneAmountTable(t *testing.T) {
	// GIVEN: A catalog whose Pure Fiction table differs from the shared one
	cat := rewards.DefaultCatalog()
	pf := make([]int64, len(cat.Jades.EndgameStars))
	for i := range pf {
		pf[i] = 1
	}
	cat.Jades.ModeStars[rewards.PureFiction] = pf
	require.NoError(t, cat.Validate())

	req := baseRequest(date(2025, time.February, 3))
	req.PureFictionStars = 7

	// WHEN: Forecasting Pure Fiction
	r := rewards.NewCalculator(cat).Calculate(req, date(2025, time.February, 2))

	// THEN: The shared table value (420) is paid, not the per-mode 1
	assertStep(t, r, rewards.StepPureFiction, rewards.UnitJades, 420)
}

// =============================================================================
// BATTLE PASS
// =============================================================================

func TestBattlePass_TwoSeasons(t *testing.T) {
	tests := []struct {
		name   string
		tier   rewards.BattlePassTier
		jades  int64
		gained int64
	}{
		{"nameless glory", rewards.NamelessGlory, 1360, 5260},
		{"nameless medal", rewards.NamelessMedal, 1760, 5660},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(date(2025, time.March, 7))
			req.PaidBattlePass = true
			req.BattlePassTier = tt.tier

			r := rewards.Calculate(req, date(2025, time.January, 1))

			assertStep(t, r, rewards.StepDailies, rewards.UnitJades, 3900)
			assertStep(t, r, rewards.StepBattlePass, rewards.UnitJades, tt.jades)
			assertStep(t, r, rewards.StepBattlePass, rewards.UnitPasses, 8)
			assertBalance(t, r.StellarJades, 0, tt.gained, tt.gained)
			assertBalance(t, r.LimitedPasses, 0, 8, 8)

			rec, ok := r.Recurrence(rewards.StepBattlePass)
			require.True(t, ok)
			assert.Equal(t, 2, rec.Count)
		})
	}
}

func TestBattlePass_OffMeansNoProjection(t *testing.T) {
	req := baseRequest(date(2025, time.March, 7))
	req.BattlePassTier = rewards.NamelessMedal

	r := rewards.Calculate(req, date(2025, time.January, 1))

	assertStep(t, r, rewards.StepBattlePass, rewards.UnitJades, 0)
	assertStep(t, r, rewards.StepBattlePass, rewards.UnitPasses, 0)
	_, ok := r.Recurrence(rewards.StepBattlePass)
	assert.False(t, ok)
}

// =============================================================================
// POINT REWARDS
// =============================================================================

func TestPointRewards_WeeklyMondayReset(t *testing.T) {
	tests := []struct {
		name    string
		today   generic.TimePoint
		end     generic.TimePoint
		level   rewards.EquilibriumLevel
		dailies int64
		points  int64
	}{
		{"monday to sunday, first day doesn't count", date(2025, time.March, 3), date(2025, time.March, 9), 6, 360, 0},
		{"three weeks, end on monday reset", date(2025, time.March, 7), date(2025, time.March, 24), 6, 1020, 675},
		{"three weeks, start and end on monday", date(2025, time.March, 3), date(2025, time.March, 24), 6, 1260, 675},
		{"three weeks, equilibrium 3", date(2025, time.March, 3), date(2025, time.March, 24), 3, 1260, 405},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(tt.end)
			req.PointRewards = true
			req.Equilibrium = tt.level

			r := rewards.Calculate(req, tt.today)

			assertStep(t, r, rewards.StepDailies, rewards.UnitJades, tt.dailies)
			assertStep(t, r, rewards.StepPointRewards, rewards.UnitJades, tt.points)
			assertBalance(t, r.StellarJades, 0, tt.dailies+tt.points, tt.dailies+tt.points)
		})
	}
}

// =============================================================================
// EMBERS EXCHANGE
// =============================================================================

func TestEmbersExchange_FirstOfMonth(t *testing.T) {
	tests := []struct {
		name   string
		today  generic.TimePoint
		end    generic.TimePoint
		passes int64
	}{
		{"end on 1st is exclusive", date(2025, time.February, 14), date(2025, time.March, 1), 0},
		{"end on 2nd counts the 1st", date(2025, time.February, 14), date(2025, time.March, 2), 5},
		{"first month is not counted", date(2025, time.March, 1), date(2025, time.March, 31), 0},
		{"twelve months", date(2020, time.January, 1), date(2020, time.December, 31), 55},
		{"twenty years", date(2030, time.January, 1), date(2049, time.December, 31), 1195},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(tt.end)
			req.EmbersExchange = true

			r := rewards.Calculate(req, tt.today)

			assertStep(t, r, rewards.StepEmbersExchange, rewards.UnitPasses, tt.passes)
			assertBalance(t, r.LimitedPasses, 0, tt.passes, tt.passes)
		})
	}
}

// =============================================================================
// ADDITIONAL SOURCES & STARTING BALANCES
// =============================================================================

func TestAdditionalSources_Summed(t *testing.T) {
	tests := []struct {
		name    string
		sources []rewards.AdditionalSource
		jades   int64
		passes  int64
	}{
		{"no entry", nil, 0, 0},
		{"one entry", []rewards.AdditionalSource{{Name: "a", Jades: dec(60), Passes: dec(15)}}, 60, 15},
		{"multiple entries", []rewards.AdditionalSource{
			{Name: "a", Jades: dec(60), Passes: dec(15)},
			{Name: "b", Jades: dec(600), Passes: dec(2)},
			{Name: "c", Jades: dec(0), Passes: dec(50)},
			{Name: "d", Jades: dec(1), Passes: dec(0)},
			{Name: "e", Jades: dec(5), Passes: dec(100)},
		}, 666, 167},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(date(2025, time.January, 31))
			req.AdditionalSources = tt.sources

			r := rewards.Calculate(req, date(2025, time.January, 1))

			assertStep(t, r, rewards.StepAdditionalSources, rewards.UnitJades, tt.jades)
			assertStep(t, r, rewards.StepAdditionalSources, rewards.UnitPasses, tt.passes)
			assertBalance(t, r.StellarJades, 0, 1800+tt.jades, 1800+tt.jades)
			assertBalance(t, r.LimitedPasses, 0, tt.passes, tt.passes)
		})
	}
}

func TestStartingBalances_CarriedIntoTotals(t *testing.T) {
	req := baseRequest(date(2025, time.January, 10))
	req.StartingJades = dec(2600)
	req.StartingPasses = dec(10)
	req.AdditionalSources = []rewards.AdditionalSource{{Name: "gift", Jades: dec(800), Passes: dec(59)}}

	r := rewards.Calculate(req, date(2025, time.January, 5))

	assertBalance(t, r.StellarJades, 2600, 1100, 3700)
	assertBalance(t, r.LimitedPasses, 10, 59, 69)
}

func TestStartingBalances_FractionalKeptExact(t *testing.T) {
	req := baseRequest(date(2025, time.January, 6))
	req.StartingJades = decimal.RequireFromString("10.5")
	req.AdditionalSources = []rewards.AdditionalSource{{Name: "x", Jades: decimal.RequireFromString("0.25"), Passes: decimal.Zero}}

	r := rewards.Calculate(req, date(2025, time.January, 5))

	assert.True(t, r.StellarJades.Total.Value.Equal(decimal.RequireFromString("70.75")), "got %s", r.StellarJades.Total.Value)
}

func TestPulls_FractionalPassesRoundDown(t *testing.T) {
	// GIVEN: Balances that do not divide into whole pulls
	req := baseRequest(date(2025, time.January, 6))
	req.StartingJades = decimal.RequireFromString("280.5")
	req.StartingPasses = decimal.RequireFromString("2.5")

	// WHEN: Forecasting one day out
	r := rewards.Calculate(req, date(2025, time.January, 5))

	// THEN: Totals stay exact but only whole passes become pulls
	assert.True(t, r.StellarJades.Total.Value.Equal(decimal.RequireFromString("340.5")))
	assert.True(t, r.LimitedPasses.Total.Value.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, rewards.Pulls{FromJades: 2, FromPasses: 2, Total: 4}, r.Pulls)
}

// =============================================================================
// FULL PROFILES
// =============================================================================

func threeMonthSources() []rewards.AdditionalSource {
	return []rewards.AdditionalSource{
		{Name: "event", Jades: dec(300), Passes: dec(0)},
		{Name: "patch gift", Jades: dec(0), Passes: dec(10)},
		{Name: "sus event", Jades: dec(69), Passes: dec(69)},
	}
}

func TestProfile_ThreeMonthsFreeToPlay(t *testing.T) {
	req := rewards.Request{
		StartingJades:          dec(1600),
		StartingPasses:         dec(20),
		PointRewards:           true,
		Equilibrium:            6,
		EmbersExchange:         true,
		MemoryOfChaosStars:     10,
		PureFictionStars:       10,
		ApocalypticShadowStars: 10,
		AdditionalSources:      threeMonthSources(),
		EndDate:                date(2027, time.April, 1),
	}

	r := rewards.Calculate(req, date(2027, time.January, 1))

	assertBalance(t, r.StellarJades, 1600, 13174, 14774)
	assertBalance(t, r.LimitedPasses, 20, 89, 109)

	want := map[rewards.StepName]int64{
		rewards.StepDailies:           5400,
		rewards.StepExpressSupply:     0,
		rewards.StepPointRewards:      2925,
		rewards.StepMemoryOfChaos:     1280,
		rewards.StepPureFiction:       1280,
		rewards.StepApocalypticShadow: 1920,
		rewards.StepBattlePass:        0,
		rewards.StepAdditionalSources: 369,
	}
	for name, v := range want {
		assertStep(t, r, name, rewards.UnitJades, v)
	}
	assertStep(t, r, rewards.StepEmbersExchange, rewards.UnitPasses, 10)
	assertStep(t, r, rewards.StepBattlePass, rewards.UnitPasses, 0)
	assertStep(t, r, rewards.StepAdditionalSources, rewards.UnitPasses, 79)

	// floor(14774 / 160) = 92 pulls from jades, plus 109 passes
	assert.Equal(t, rewards.Pulls{FromJades: 92, FromPasses: 109, Total: 201}, r.Pulls)
}

func TestProfile_ThreeMonthsPaid(t *testing.T) {
	req := rewards.Request{
		StartingJades:          dec(1600),
		StartingPasses:         dec(20),
		ExpressSupplyPass:      true,
		PaidBattlePass:         true,
		BattlePassTier:         rewards.NamelessMedal,
		PointRewards:           true,
		Equilibrium:            6,
		EmbersExchange:         true,
		MemoryOfChaosStars:     12,
		PureFictionStars:       12,
		ApocalypticShadowStars: 12,
		AdditionalSources:      threeMonthSources(),
		EndDate:                date(2027, time.April, 1),
	}

	r := rewards.Calculate(req, date(2027, time.January, 1))

	assertBalance(t, r.StellarJades, 1600, 24154, 25754)
	assertBalance(t, r.LimitedPasses, 20, 97, 117)

	want := map[rewards.StepName]int64{
		rewards.StepDailies:           5400,
		rewards.StepExpressSupply:     8100,
		rewards.StepPointRewards:      2925,
		rewards.StepMemoryOfChaos:     1600,
		rewards.StepPureFiction:       1600,
		rewards.StepApocalypticShadow: 2400,
		rewards.StepBattlePass:        1760,
		rewards.StepAdditionalSources: 369,
	}
	for name, v := range want {
		assertStep(t, r, name, rewards.UnitJades, v)
	}
	assertStep(t, r, rewards.StepEmbersExchange, rewards.UnitPasses, 10)
	assertStep(t, r, rewards.StepBattlePass, rewards.UnitPasses, 8)
	assertStep(t, r, rewards.StepAdditionalSources, rewards.UnitPasses, 79)
}

func TestBreakdown_StepOrder(t *testing.T) {
	r := rewards.Calculate(baseRequest(date(2025, time.January, 10)), date(2025, time.January, 5))

	var jades, passes []rewards.StepName
	for _, s := range r.Steps.For(rewards.UnitJades) {
		jades = append(jades, s.Name)
	}
	for _, s := range r.Steps.For(rewards.UnitPasses) {
		passes = append(passes, s.Name)
	}

	assert.Equal(t, []rewards.StepName{
		rewards.StepDailies, rewards.StepExpressSupply, rewards.StepPointRewards,
		rewards.StepMemoryOfChaos, rewards.StepPureFiction, rewards.StepApocalypticShadow,
		rewards.StepBattlePass, rewards.StepAdditionalSources,
	}, jades)
	assert.Equal(t, []rewards.StepName{
		rewards.StepEmbersExchange, rewards.StepBattlePass, rewards.StepAdditionalSources,
	}, passes)
}

// =============================================================================
// PROPERTIES
// =============================================================================

func everythingOn(end generic.TimePoint) rewards.Request {
	return rewards.Request{
		StartingJades:          dec(100),
		StartingPasses:         dec(3),
		ExpressSupplyPass:      true,
		PaidBattlePass:         true,
		BattlePassTier:         rewards.NamelessMedal,
		PointRewards:           true,
		Equilibrium:            4,
		EmbersExchange:         true,
		MemoryOfChaosStars:     9,
		PureFictionStars:       5,
		ApocalypticShadowStars: 12,
		AdditionalSources:      threeMonthSources(),
		EndDate:                end,
	}
}

func TestCalculate_SameInputsSameResult(t *testing.T) {
	req := everythingOn(date(2026, time.June, 30))
	today := date(2026, time.January, 15)

	assert.Equal(t, rewards.Calculate(req, today), rewards.Calculate(req, today))
}

func TestCalculate_GainedNeverDecreasesAsEndMovesOut(t *testing.T) {
	today := date(2026, time.January, 15)

	prevJades, prevPasses := decimal.Zero, decimal.Zero
	for i := 1; i <= 200; i++ {
		r := rewards.Calculate(everythingOn(today.AddDays(i)), today)

		assert.True(t, r.StellarJades.Gained.Value.GreaterThanOrEqual(prevJades), "jades shrank at +%d days", i)
		assert.True(t, r.LimitedPasses.Gained.Value.GreaterThanOrEqual(prevPasses), "passes shrank at +%d days", i)
		prevJades, prevPasses = r.StellarJades.Gained.Value, r.LimitedPasses.Gained.Value
	}
}

func TestCalculate_TotalsMatchBreakdown(t *testing.T) {
	r := rewards.Calculate(everythingOn(date(2026, time.June, 30)), date(2026, time.January, 15))

	for _, b := range []struct {
		bal  generic.Balance
		unit generic.Unit
	}{{r.StellarJades, rewards.UnitJades}, {r.LimitedPasses, rewards.UnitPasses}} {
		assert.True(t, b.bal.Gained.Equal(r.Steps.Sum(b.unit)))
		assert.True(t, b.bal.Total.Value.Equal(b.bal.Starting.Value.Add(b.bal.Gained.Value)))
		for _, s := range r.Steps.For(b.unit) {
			assert.False(t, s.Amount.IsNegative(), "%s", s.Name)
		}
	}
}

func TestCalculate_EndOnOrBeforeTodayGivesNothing(t *testing.T) {
	today := date(2026, time.January, 15)

	for _, end := range []generic.TimePoint{today, today.AddDays(-1), today.AddDays(-90)} {
		t.Run(end.String(), func(t *testing.T) {
			req := everythingOn(end)
			req.AdditionalSources = nil

			r := rewards.Calculate(req, today)

			assertBalance(t, r.StellarJades, 100, 0, 100)
			assertBalance(t, r.LimitedPasses, 3, 0, 3)
		})
	}
}
