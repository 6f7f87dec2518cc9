/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Forecast:
    ForecastDTO (camelCase keys, the shape the web client renders)

  Catalog:
    CatalogDTO

  Presets:
    PresetDTO, PresetForecastRequest

  Plans:
    PlanDTO, SavePlanRequest

AMOUNTS:
  Amounts are decimals rendered as JSON numbers, never floats.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/request.go: RequestJSON, the forecast form body
*/
package api

import (
	"encoding/json"
	"time"

	"github.com/warp/jade-forecast/factory"
	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/rewards"
)

// =============================================================================
// FORECAST
// =============================================================================

// ForecastDTO is a computed forecast.
type ForecastDTO struct {
	Today            string                   `json:"today"`
	EndDate          string                   `json:"endDate"`
	Days             int                      `json:"days"`
	StellarJades     BalanceDTO               `json:"stellarJades"`
	LimitedPasses    BalanceDTO               `json:"limitedPasses"`
	CalculationSteps CalculationStepsDTO      `json:"calculationSteps"`
	Recurrences      map[string]RecurrenceDTO `json:"recurrences"`
	Pulls            PullsDTO                 `json:"pulls"`
}

// BalanceDTO is one currency's starting, gained and total amounts.
type BalanceDTO struct {
	Starting json.Number `json:"starting"`
	Gained   json.Number `json:"gained"`
	Total    json.Number `json:"total"`
}

// CalculationStepsDTO is the per-source breakdown.
type CalculationStepsDTO struct {
	StellarJades  map[string]json.Number `json:"stellarJades"`
	LimitedPasses map[string]json.Number `json:"limitedPasses"`
}

// RecurrenceDTO is a season projection.
type RecurrenceDTO struct {
	Count         int `json:"count"`
	DaysRemaining int `json:"daysRemaining"`
}

// PullsDTO converts totals into draws.
type PullsDTO struct {
	FromJades  int64 `json:"fromJades"`
	FromPasses int64 `json:"fromPasses"`
	Total      int64 `json:"total"`
}

// stepKeys names each breakdown row the way the web client expects.
var stepKeys = map[generic.Unit]map[rewards.StepName]string{
	rewards.UnitJades: {
		rewards.StepDailies:           "dailiesJades",
		rewards.StepExpressSupply:     "expressSupplyJades",
		rewards.StepPointRewards:      "pointRewardsJades",
		rewards.StepMemoryOfChaos:     "memoryOfChaosStarsJades",
		rewards.StepPureFiction:       "pureFictionStarsJades",
		rewards.StepApocalypticShadow: "apocalypticShadowStarsJades",
		rewards.StepBattlePass:        "battlePassJades",
		rewards.StepAdditionalSources: "additionalSourcesJades",
	},
	rewards.UnitPasses: {
		rewards.StepEmbersExchange:    "emberExchangePasses",
		rewards.StepBattlePass:        "battlePassPasses",
		rewards.StepAdditionalSources: "additionalSourcesPasses",
	},
}

// recurrenceKeys names each season the way the web client keys reset dates.
var recurrenceKeys = map[rewards.StepName]string{
	rewards.StepMemoryOfChaos:     "memoryOfChaos",
	rewards.StepPureFiction:       "pureFiction",
	rewards.StepApocalypticShadow: "apocalypticShadow",
	rewards.StepBattlePass:        "battlePass",
}

func recurrenceKey(name rewards.StepName) string {
	if key, ok := recurrenceKeys[name]; ok {
		return key
	}
	return string(name)
}

func toForecastDTO(r rewards.Result) ForecastDTO {
	dto := ForecastDTO{
		Today:         r.Period.Start.String(),
		EndDate:       r.Period.End.String(),
		Days:          r.Period.Days(),
		StellarJades:  toBalanceDTO(r.StellarJades),
		LimitedPasses: toBalanceDTO(r.LimitedPasses),
		CalculationSteps: CalculationStepsDTO{
			StellarJades:  toStepsDTO(r.Steps, rewards.UnitJades),
			LimitedPasses: toStepsDTO(r.Steps, rewards.UnitPasses),
		},
		Recurrences: make(map[string]RecurrenceDTO),
		Pulls: PullsDTO{
			FromJades:  r.Pulls.FromJades,
			FromPasses: r.Pulls.FromPasses,
			Total:      r.Pulls.Total,
		},
	}
	for name, rec := range r.Recurrences() {
		dto.Recurrences[recurrenceKey(name)] = RecurrenceDTO{Count: rec.Count, DaysRemaining: rec.DaysRemaining}
	}
	return dto
}

func toBalanceDTO(b generic.Balance) BalanceDTO {
	return BalanceDTO{
		Starting: number(b.Starting),
		Gained:   number(b.Gained),
		Total:    number(b.Total),
	}
}

func toStepsDTO(b rewards.Breakdown, u generic.Unit) map[string]json.Number {
	out := make(map[string]json.Number)
	for _, s := range b.For(u) {
		key, ok := stepKeys[u][s.Name]
		if !ok {
			key = string(s.Name)
		}
		out[key] = number(s.Amount)
	}
	return out
}

func number(a generic.Amount) json.Number {
	return json.Number(a.Value.String())
}

// =============================================================================
// CATALOG
// =============================================================================

// CatalogDTO exposes the reward tables in use.
type CatalogDTO struct {
	Jades struct {
		LoginDaily         int64              `json:"login_daily"`
		ExpressSupplyDaily int64              `json:"express_supply_daily"`
		BattlePass         BattlePassDTO      `json:"battle_pass"`
		PointRewards       []int64            `json:"point_rewards"`
		EndgameStars       []int64            `json:"endgame_stars"`
		ModeStars          map[string][]int64 `json:"mode_stars"`
	} `json:"jades"`
	Passes struct {
		BattlePass     BattlePassDTO `json:"battle_pass"`
		EmbersExchange int64         `json:"embers_exchange"`
	} `json:"passes"`
	Resets                 map[string]string `json:"resets"`
	EndgameIntervalDays    int               `json:"endgame_interval_days"`
	BattlePassIntervalDays int               `json:"battle_pass_interval_days"`
	JadesPerPull           int64             `json:"jades_per_pull"`
}

// BattlePassDTO is a per-tier payout.
type BattlePassDTO struct {
	NamelessGlory int64 `json:"nameless_glory"`
	NamelessMedal int64 `json:"nameless_medal"`
}

func toCatalogDTO(c rewards.Catalog) CatalogDTO {
	var dto CatalogDTO
	dto.Jades.LoginDaily = c.Jades.LoginDaily
	dto.Jades.ExpressSupplyDaily = c.Jades.ExpressSupplyDaily
	dto.Jades.BattlePass = BattlePassDTO(c.Jades.BattlePass)
	dto.Jades.PointRewards = c.Jades.PointRewards
	dto.Jades.EndgameStars = c.Jades.EndgameStars
	dto.Jades.ModeStars = make(map[string][]int64, len(c.Jades.ModeStars))
	for m, t := range c.Jades.ModeStars {
		dto.Jades.ModeStars[string(m)] = t
	}
	dto.Passes.BattlePass = BattlePassDTO(c.Passes.BattlePass)
	dto.Passes.EmbersExchange = c.Passes.EmbersExchange
	dto.Resets = map[string]string{
		string(rewards.MemoryOfChaos):     c.Resets.MemoryOfChaos.String(),
		string(rewards.PureFiction):       c.Resets.PureFiction.String(),
		string(rewards.ApocalypticShadow): c.Resets.ApocalypticShadow.String(),
		"battle_pass":                     c.Resets.BattlePass.String(),
	}
	dto.EndgameIntervalDays = c.EndgameIntervalDays
	dto.BattlePassIntervalDays = c.BattlePassIntervalDays
	dto.JadesPerPull = c.JadesPerPull
	return dto
}

// =============================================================================
// PRESETS
// =============================================================================

// PresetDTO is a built-in profile with its form values.
type PresetDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Request     factory.RequestJSON `json:"request"`
}

// PresetForecastRequest picks the horizon for a preset forecast.
type PresetForecastRequest struct {
	EndDate string `json:"end_date,omitempty"` // Default: three months after today
}

// =============================================================================
// PLANS
// =============================================================================

// SavePlanRequest stores a form draft under a name.
type SavePlanRequest struct {
	Name    string              `json:"name"`
	Request factory.RequestJSON `json:"request"`
}

// PlanDTO is a saved draft.
type PlanDTO struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Version   int                 `json:"version"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Request   factory.RequestJSON `json:"request"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}
