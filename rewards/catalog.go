/*
catalog.go - Reward amounts, reset anchors and cadences

PURPOSE:
  The catalog is the only source of game numbers. It is built once at
  startup (literal defaults, optionally overridden from YAML) and never
  mutated afterwards; calculators share it read-only.

ANCHORS:
  Each 42-day family has one known historical reset date. Every later
  (and earlier) reset is derived by fixed-interval arithmetic, see
  generic.Recur.

SHARED ENDGAME TABLE:
  All three endgame modes read EndgameStars, even though ModeStars carries
  a table per mode. This matches the observed game data behaviour; the
  per-mode tables are informational until confirmed otherwise.

SEE ALSO:
  - loader.go: YAML overrides
  - sources.go: Consumers of each field
*/
package rewards

import (
	"fmt"
	"sort"

	"github.com/warp/jade-forecast/generic"
)

// BattlePassAmounts is one currency's payout per battle pass tier.
type BattlePassAmounts struct {
	NamelessGlory int64
	NamelessMedal int64
}

// For returns the payout for a tier. Unknown tiers are a programmer error.
func (b BattlePassAmounts) For(t BattlePassTier) int64 {
	switch t {
	case NamelessGlory:
		return b.NamelessGlory
	case NamelessMedal:
		return b.NamelessMedal
	default:
		panic(fmt.Sprintf("unknown battle pass tier %d", t))
	}
}

// JadeAmounts lists Stellar Jade payouts.
type JadeAmounts struct {
	LoginDaily         int64
	ExpressSupplyDaily int64
	BattlePass         BattlePassAmounts
	PointRewards       []int64 // indexed by EquilibriumLevel
	EndgameStars       []int64 // indexed by StarTier, shared by all modes
	ModeStars          map[Mode][]int64
}

// PassAmounts lists Limited Pass payouts.
type PassAmounts struct {
	BattlePass     BattlePassAmounts
	EmbersExchange int64
}

// ResetDates holds one known reset per anchored family.
type ResetDates struct {
	MemoryOfChaos     generic.TimePoint
	PureFiction       generic.TimePoint
	ApocalypticShadow generic.TimePoint
	BattlePass        generic.TimePoint
}

// For returns the reset anchor of an endgame mode.
func (r ResetDates) For(m Mode) generic.TimePoint {
	switch m {
	case MemoryOfChaos:
		return r.MemoryOfChaos
	case PureFiction:
		return r.PureFiction
	case ApocalypticShadow:
		return r.ApocalypticShadow
	default:
		panic(fmt.Sprintf("unknown endgame mode %q", m))
	}
}

// Catalog is the full reward configuration.
type Catalog struct {
	Jades  JadeAmounts
	Passes PassAmounts
	Resets ResetDates

	EndgameIntervalDays    int
	BattlePassIntervalDays int

	JadesPerPull int64
}

// DefaultCatalog returns the built-in reward data.
func DefaultCatalog() Catalog {
	stars := []int64{0, 60, 120, 180, 240, 300, 360, 420, 480, 560, 640, 720, 800}
	return Catalog{
		Jades: JadeAmounts{
			LoginDaily:         60,
			ExpressSupplyDaily: 90,
			BattlePass:         BattlePassAmounts{NamelessGlory: 680, NamelessMedal: 880},
			PointRewards:       []int64{75, 75, 105, 135, 165, 195, 225},
			EndgameStars:       stars,
			ModeStars: map[Mode][]int64{
				MemoryOfChaos:     append([]int64(nil), stars...),
				PureFiction:       append([]int64(nil), stars...),
				ApocalypticShadow: append([]int64(nil), stars...),
			},
		},
		Passes: PassAmounts{
			BattlePass:     BattlePassAmounts{NamelessGlory: 4, NamelessMedal: 4},
			EmbersExchange: 5,
		},
		Resets: ResetDates{
			MemoryOfChaos:     generic.MustParseDate("2024-11-26"),
			PureFiction:       generic.MustParseDate("2024-12-23"),
			ApocalypticShadow: generic.MustParseDate("2024-12-09"),
			BattlePass:        generic.MustParseDate("2024-12-04"),
		},
		EndgameIntervalDays:    42,
		BattlePassIntervalDays: 42,
		JadesPerPull:           160,
	}
}

// PointRewardAmount is the weekly payout for an equilibrium level.
func (c *Catalog) PointRewardAmount(l EquilibriumLevel) int64 {
	return c.Jades.PointRewards[l]
}

// EndgameAmount is the per-season payout for a star tier. The mode does
// not select the table: every mode reads the shared EndgameStars.
func (c *Catalog) EndgameAmount(_ Mode, t StarTier) int64 {
	return c.Jades.EndgameStars[t]
}

// EndgameCadence returns the season cadence of an endgame mode.
func (c *Catalog) EndgameCadence(m Mode) generic.AnchoredCadence {
	return generic.AnchoredCadence{Anchor: c.Resets.For(m), IntervalDays: c.EndgameIntervalDays}
}

// BattlePassCadence returns the battle pass season cadence.
func (c *Catalog) BattlePassCadence() generic.AnchoredCadence {
	return generic.AnchoredCadence{Anchor: c.Resets.BattlePass, IntervalDays: c.BattlePassIntervalDays}
}

// Validate checks table shapes and ranges so that every in-range selector
// indexes safely.
func (c *Catalog) Validate() error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if n := len(c.Jades.PointRewards); n != int(MaxEquilibriumLevel)+1 {
		fail("point_rewards: want %d levels, got %d", MaxEquilibriumLevel+1, n)
	}
	if n := len(c.Jades.EndgameStars); n != int(MaxStarTier)+1 {
		fail("endgame_stars: want %d tiers, got %d", MaxStarTier+1, n)
	}
	for mode, table := range c.Jades.ModeStars {
		if len(table) != int(MaxStarTier)+1 {
			fail("mode_stars.%s: want %d tiers, got %d", mode, MaxStarTier+1, len(table))
		}
	}
	if c.EndgameIntervalDays <= 0 {
		fail("endgame_interval_days must be positive")
	}
	if c.BattlePassIntervalDays <= 0 {
		fail("battle_pass_interval_days must be positive")
	}
	if c.JadesPerPull <= 0 {
		fail("jades_per_pull must be positive")
	}

	amounts := map[string]int64{
		"login_daily":              c.Jades.LoginDaily,
		"express_supply_daily":     c.Jades.ExpressSupplyDaily,
		"jades.battle_pass.glory":  c.Jades.BattlePass.NamelessGlory,
		"jades.battle_pass.medal":  c.Jades.BattlePass.NamelessMedal,
		"passes.battle_pass.glory": c.Passes.BattlePass.NamelessGlory,
		"passes.battle_pass.medal": c.Passes.BattlePass.NamelessMedal,
		"passes.embers_exchange":   c.Passes.EmbersExchange,
	}
	for name, v := range amounts {
		if v < 0 {
			fail("%s must not be negative", name)
		}
	}
	for _, table := range [][]int64{c.Jades.PointRewards, c.Jades.EndgameStars} {
		for _, v := range table {
			if v < 0 {
				fail("table amounts must not be negative")
				break
			}
		}
	}

	resets := map[string]generic.TimePoint{
		"memory_of_chaos":    c.Resets.MemoryOfChaos,
		"pure_fiction":       c.Resets.PureFiction,
		"apocalyptic_shadow": c.Resets.ApocalypticShadow,
		"battle_pass":        c.Resets.BattlePass,
	}
	for name, d := range resets {
		if d.IsZero() {
			fail("resets.%s is required", name)
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("%w: %v", generic.ErrInvalidCatalog, problems)
	}
	return nil
}
