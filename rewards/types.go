/*
Package rewards provides the game-reward domain on top of the generic
accrual engine.

PURPOSE:
  Forecasts how many Stellar Jades and Limited Passes a player accumulates
  between today and a chosen end date, from the reward sources the player
  opts into.

REWARD SOURCES:
  dailies:            60 jades per calendar day (always on)
  express_supply:     90 jades per day while the monthly pass is active
  point_rewards:      weekly, Monday reset, amount by equilibrium level
  embers_exchange:    5 passes on the 1st of every month
  memory_of_chaos:    42-day endgame season, amount by star tier
  pure_fiction:       42-day endgame season, amount by star tier
  apocalyptic_shadow: 42-day endgame season, amount by star tier
  battle_pass:        42-day season, jades + passes by tier
  additional_sources: user-entered one-off amounts

UNITS:
  UnitJades:  Stellar Jades (primary currency, 160 per pull)
  UnitPasses: Limited Passes (one pull each)

EXAMPLE FLOW:
  1. Player has 1600 jades and 20 passes on 2027-01-01
  2. Forecast to 2027-04-01 with point rewards and embers exchange
  3. 90 days of dailies (5400) + 13 weeks of point rewards (2925) + ...
  4. Result carries starting/gained/total per currency and each step

SEE ALSO:
  - catalog.go: Reward amounts, reset anchors, intervals
  - sources.go: One entry per reward source
  - calculator.go: The reduction over sources
*/
package rewards

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/jade-forecast/generic"
)

// Units for rewards
const (
	UnitJades  generic.Unit = "stellar_jades"
	UnitPasses generic.Unit = "limited_passes"
)

// =============================================================================
// SELECTORS - Closed enumerations picked in the form
// =============================================================================

// BattlePassTier selects which paid battle pass tier was bought.
type BattlePassTier int

const (
	NamelessGlory BattlePassTier = iota
	NamelessMedal
)

func (t BattlePassTier) String() string {
	switch t {
	case NamelessGlory:
		return "nameless_glory"
	case NamelessMedal:
		return "nameless_medal"
	default:
		return "battle_pass_tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// EquilibriumLevel is the player's progression tier gating weekly point rewards.
type EquilibriumLevel int

const MaxEquilibriumLevel EquilibriumLevel = 6

// StarTier is how many clear-stars a player expects per endgame season.
// Zero means the mode is not played.
type StarTier int

const MaxStarTier StarTier = 12

// Mode is one of the three endgame modes.
type Mode string

const (
	MemoryOfChaos     Mode = "memory_of_chaos"
	PureFiction       Mode = "pure_fiction"
	ApocalypticShadow Mode = "apocalyptic_shadow"
)

// Modes lists the endgame modes in display order.
func Modes() []Mode {
	return []Mode{MemoryOfChaos, PureFiction, ApocalypticShadow}
}

// ParseBattlePassTier converts a form option identifier ("0", "1").
func ParseBattlePassTier(field, s string) (BattlePassTier, error) {
	n, err := parseOption(field, s, int(NamelessMedal))
	return BattlePassTier(n), err
}

// ParseEquilibriumLevel converts a form option identifier ("0".."6").
func ParseEquilibriumLevel(field, s string) (EquilibriumLevel, error) {
	n, err := parseOption(field, s, int(MaxEquilibriumLevel))
	return EquilibriumLevel(n), err
}

// ParseStarTier converts a form option identifier ("0".."12").
func ParseStarTier(field, s string) (StarTier, error) {
	n, err := parseOption(field, s, int(MaxStarTier))
	return StarTier(n), err
}

func parseOption(field, s string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > limit {
		return 0, &generic.SelectorError{Field: field, Value: s, Max: limit}
	}
	return n, nil
}

// =============================================================================
// REQUEST - One forecast submission
// =============================================================================

// AdditionalSource is a user-entered one-off amount.
type AdditionalSource struct {
	Name   string
	Jades  decimal.Decimal
	Passes decimal.Decimal
}

// Request is the typed configuration the calculator consumes. It is
// assumed valid: non-negative amounts and selectors inside their ranges.
type Request struct {
	StartingJades  decimal.Decimal
	StartingPasses decimal.Decimal

	ExpressSupplyPass bool
	PaidBattlePass    bool
	BattlePassTier    BattlePassTier
	PointRewards      bool
	Equilibrium       EquilibriumLevel
	EmbersExchange    bool

	MemoryOfChaosStars     StarTier
	PureFictionStars       StarTier
	ApocalypticShadowStars StarTier

	AdditionalSources []AdditionalSource

	// EndDate is exclusive.
	EndDate generic.TimePoint
}

// Stars returns the tier selected for an endgame mode.
func (r Request) Stars(m Mode) StarTier {
	switch m {
	case MemoryOfChaos:
		return r.MemoryOfChaosStars
	case PureFiction:
		return r.PureFictionStars
	case ApocalypticShadow:
		return r.ApocalypticShadowStars
	default:
		panic(fmt.Sprintf("unknown endgame mode %q", m))
	}
}
