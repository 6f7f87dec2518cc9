package rewards

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/jade-forecast/generic"
)

// StepName identifies one reward source in a breakdown.
type StepName string

const (
	StepDailies           StepName = "dailies"
	StepExpressSupply     StepName = "express_supply"
	StepPointRewards      StepName = "point_rewards"
	StepEmbersExchange    StepName = "embers_exchange"
	StepMemoryOfChaos     StepName = "memory_of_chaos"
	StepPureFiction       StepName = "pure_fiction"
	StepApocalypticShadow StepName = "apocalyptic_shadow"
	StepBattlePass        StepName = "battle_pass"
	StepAdditionalSources StepName = "additional_sources"
)

// calculation is everything a source may read. It is built once per
// Calculate call, so every source sees the same "today".
type calculation struct {
	req     Request
	catalog *Catalog
	period  generic.Period
}

// yield is one source's contribution.
type yield struct {
	jades      decimal.Decimal
	passes     decimal.Decimal
	recurrence *generic.Recurrence
}

func (y yield) amount(u generic.Unit) generic.Amount {
	if u == UnitPasses {
		return generic.NewAmount(y.passes, u)
	}
	return generic.NewAmount(y.jades, u)
}

// source is a named reward source and the currencies it reports.
type source struct {
	name  StepName
	units []generic.Unit
	grant func(c calculation) yield
}

var (
	jadesOnly  = []generic.Unit{UnitJades}
	passesOnly = []generic.Unit{UnitPasses}
	both       = []generic.Unit{UnitJades, UnitPasses}
)

// sources is the ordered source table. Adding a reward source means adding
// an entry here; the summation in Calculate never changes.
var sources = []source{
	{StepDailies, jadesOnly, dailies},
	{StepExpressSupply, jadesOnly, expressSupply},
	{StepPointRewards, jadesOnly, pointRewards},
	{StepEmbersExchange, passesOnly, embersExchange},
	{StepMemoryOfChaos, jadesOnly, endgame(MemoryOfChaos)},
	{StepPureFiction, jadesOnly, endgame(PureFiction)},
	{StepApocalypticShadow, jadesOnly, endgame(ApocalypticShadow)},
	{StepBattlePass, both, battlePass},
	{StepAdditionalSources, both, additionalSources},
}

func times(count int, amount int64) decimal.Decimal {
	return decimal.NewFromInt(int64(count) * amount)
}

func dailies(c calculation) yield {
	days := generic.DailyCadence{}.Occurrences(c.period)
	return yield{jades: times(days, c.catalog.Jades.LoginDaily)}
}

func expressSupply(c calculation) yield {
	if !c.req.ExpressSupplyPass {
		return yield{}
	}
	days := generic.DailyCadence{}.Occurrences(c.period)
	return yield{jades: times(days, c.catalog.Jades.ExpressSupplyDaily)}
}

func pointRewards(c calculation) yield {
	if !c.req.PointRewards {
		return yield{}
	}
	weeks := generic.WeeklyCadence{WeekStart: time.Monday}.Occurrences(c.period)
	return yield{jades: times(weeks, c.catalog.PointRewardAmount(c.req.Equilibrium))}
}

func embersExchange(c calculation) yield {
	if !c.req.EmbersExchange {
		return yield{}
	}
	firsts := generic.MonthStartCadence{}.Occurrences(c.period)
	return yield{passes: times(firsts, c.catalog.Passes.EmbersExchange)}
}

func endgame(m Mode) func(c calculation) yield {
	return func(c calculation) yield {
		tier := c.req.Stars(m)
		if tier == 0 {
			return yield{}
		}
		rec := c.catalog.EndgameCadence(m).Recurrence(c.period)
		return yield{
			jades:      times(rec.Count, c.catalog.EndgameAmount(m, tier)),
			recurrence: &rec,
		}
	}
}

func battlePass(c calculation) yield {
	if !c.req.PaidBattlePass {
		return yield{}
	}
	rec := c.catalog.BattlePassCadence().Recurrence(c.period)
	return yield{
		jades:      times(rec.Count, c.catalog.Jades.BattlePass.For(c.req.BattlePassTier)),
		passes:     times(rec.Count, c.catalog.Passes.BattlePass.For(c.req.BattlePassTier)),
		recurrence: &rec,
	}
}

func additionalSources(c calculation) yield {
	var y yield
	for _, s := range c.req.AdditionalSources {
		y.jades = y.jades.Add(s.Jades)
		y.passes = y.passes.Add(s.Passes)
	}
	return y
}
