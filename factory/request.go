/*
Package factory provides JSON to Go request conversion.

PURPOSE:
  Converts the raw forecast form (JSON numbers, booleans and selector
  option strings) into a typed rewards.Request. Selector strings are
  resolved to enums exactly once, here, so the calculator never sees an
  unknown option.

JSON SCHEMA:
  {
    "starting_stellar_jades": 1600,
    "starting_limited_passes": 20,
    "express_supply_pass": false,
    "paid_battle_pass": false,
    "battle_pass_type": "0",
    "point_rewards": true,
    "point_rewards_equilibrium": "6",
    "embers_exchange_five_passes": true,
    "memory_of_chaos_stars": "10",
    "pure_fiction_stars": "10",
    "apocalyptic_shadow_stars": "10",
    "additional_sources": [
      {"name": "event", "jades": 300, "passes": 0}
    ],
    "end_date": "2027-04-01"
  }

TWO STAGES:
  Validate checks the form the way the web form does (every failing field
  is reported at once). ParseRequest converts; it fails on the first
  unknown selector or unparseable date.

USAGE:
  raw, err := factory.Decode(body)
  if err := factory.Validate(raw, today); err != nil { ... }
  req, err := factory.ParseRequest(raw)
  result := calc.Calculate(req, today)

SEE ALSO:
  - rewards/types.go: Request and selector enums
  - generic/errors.go: ValidationErrors, SelectorError
*/
package factory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/rewards"
)

// MaxSourceNameLength is the longest additional source label accepted.
const MaxSourceNameLength = 2000

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RequestJSON is the raw forecast form.
type RequestJSON struct {
	StartingJades  decimal.Decimal `json:"starting_stellar_jades"`
	StartingPasses decimal.Decimal `json:"starting_limited_passes"`

	ExpressSupplyPass bool   `json:"express_supply_pass"`
	PaidBattlePass    bool   `json:"paid_battle_pass"`
	BattlePassType    string `json:"battle_pass_type"`

	PointRewards            bool   `json:"point_rewards"`
	PointRewardsEquilibrium string `json:"point_rewards_equilibrium"`
	EmbersExchange          bool   `json:"embers_exchange_five_passes"`

	MemoryOfChaosStars     string `json:"memory_of_chaos_stars"`
	PureFictionStars       string `json:"pure_fiction_stars"`
	ApocalypticShadowStars string `json:"apocalyptic_shadow_stars"`

	AdditionalSources []SourceJSON `json:"additional_sources"`

	EndDate string `json:"end_date"` // YYYY-MM-DD, exclusive
}

// SourceJSON is one additional source row.
type SourceJSON struct {
	Name   string          `json:"name"`
	Jades  decimal.Decimal `json:"jades"`
	Passes decimal.Decimal `json:"passes"`
}

// Decode parses a JSON body into the raw form. Unknown fields are rejected.
func Decode(b []byte) (RequestJSON, error) {
	var raw RequestJSON
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return RequestJSON{}, fmt.Errorf("%w: failed to parse request JSON: %v", generic.ErrInvalidInput, err)
	}
	return raw, nil
}

// =============================================================================
// CONVERSION
// =============================================================================

// ParseRequest converts the raw form into a typed request. Source names are
// trimmed; amounts are taken as-is (run Validate first to reject negatives).
func ParseRequest(raw RequestJSON) (rewards.Request, error) {
	tier, err := rewards.ParseBattlePassTier("battle_pass_type", raw.BattlePassType)
	if err != nil {
		return rewards.Request{}, err
	}
	eq, err := rewards.ParseEquilibriumLevel("point_rewards_equilibrium", raw.PointRewardsEquilibrium)
	if err != nil {
		return rewards.Request{}, err
	}
	moc, err := rewards.ParseStarTier("memory_of_chaos_stars", raw.MemoryOfChaosStars)
	if err != nil {
		return rewards.Request{}, err
	}
	pf, err := rewards.ParseStarTier("pure_fiction_stars", raw.PureFictionStars)
	if err != nil {
		return rewards.Request{}, err
	}
	as, err := rewards.ParseStarTier("apocalyptic_shadow_stars", raw.ApocalypticShadowStars)
	if err != nil {
		return rewards.Request{}, err
	}
	end, err := generic.ParseDate(raw.EndDate)
	if err != nil {
		return rewards.Request{}, fmt.Errorf("%w: end_date: %v", generic.ErrInvalidInput, err)
	}

	sources := make([]rewards.AdditionalSource, len(raw.AdditionalSources))
	for i, s := range raw.AdditionalSources {
		sources[i] = rewards.AdditionalSource{
			Name:   strings.TrimSpace(s.Name),
			Jades:  s.Jades,
			Passes: s.Passes,
		}
	}

	return rewards.Request{
		StartingJades:          raw.StartingJades,
		StartingPasses:         raw.StartingPasses,
		ExpressSupplyPass:      raw.ExpressSupplyPass,
		PaidBattlePass:         raw.PaidBattlePass,
		BattlePassTier:         tier,
		PointRewards:           raw.PointRewards,
		Equilibrium:            eq,
		EmbersExchange:         raw.EmbersExchange,
		MemoryOfChaosStars:     moc,
		PureFictionStars:       pf,
		ApocalypticShadowStars: as,
		AdditionalSources:      sources,
		EndDate:                end,
	}, nil
}

// ToJSON converts a typed request back into the raw form.
func ToJSON(req rewards.Request) RequestJSON {
	sources := make([]SourceJSON, len(req.AdditionalSources))
	for i, s := range req.AdditionalSources {
		sources[i] = SourceJSON{Name: s.Name, Jades: s.Jades, Passes: s.Passes}
	}

	raw := RequestJSON{
		StartingJades:           req.StartingJades,
		StartingPasses:          req.StartingPasses,
		ExpressSupplyPass:       req.ExpressSupplyPass,
		PaidBattlePass:          req.PaidBattlePass,
		BattlePassType:          fmt.Sprint(int(req.BattlePassTier)),
		PointRewards:            req.PointRewards,
		PointRewardsEquilibrium: fmt.Sprint(int(req.Equilibrium)),
		EmbersExchange:          req.EmbersExchange,
		MemoryOfChaosStars:      fmt.Sprint(int(req.MemoryOfChaosStars)),
		PureFictionStars:        fmt.Sprint(int(req.PureFictionStars)),
		ApocalypticShadowStars:  fmt.Sprint(int(req.ApocalypticShadowStars)),
		AdditionalSources:       sources,
	}
	if !req.EndDate.IsZero() {
		raw.EndDate = req.EndDate.String()
	}
	return raw
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the raw form against the form rules and reports every
// failing field. The end date must be strictly after today.
func Validate(raw RequestJSON, today generic.TimePoint) error {
	var errs generic.ValidationErrors

	nonNegative := func(field string, v decimal.Decimal) {
		if v.IsNegative() {
			errs = append(errs, generic.FieldError{Field: field, Code: "negative", Message: "must be 0 or more"})
		}
	}
	selector := func(field, v string, parse func(field, s string) error) {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, generic.FieldError{Field: field, Code: "required", Message: "an option must be selected"})
			return
		}
		if err := parse(field, v); err != nil {
			errs = append(errs, generic.FieldError{Field: field, Code: "invalid_option", Message: err.Error()})
		}
	}

	nonNegative("starting_stellar_jades", raw.StartingJades)
	nonNegative("starting_limited_passes", raw.StartingPasses)

	selector("battle_pass_type", raw.BattlePassType, func(f, s string) error {
		_, err := rewards.ParseBattlePassTier(f, s)
		return err
	})
	selector("point_rewards_equilibrium", raw.PointRewardsEquilibrium, func(f, s string) error {
		_, err := rewards.ParseEquilibriumLevel(f, s)
		return err
	})
	for _, field := range []struct {
		name  string
		value string
	}{
		{"memory_of_chaos_stars", raw.MemoryOfChaosStars},
		{"pure_fiction_stars", raw.PureFictionStars},
		{"apocalyptic_shadow_stars", raw.ApocalypticShadowStars},
	} {
		selector(field.name, field.value, func(f, s string) error {
			_, err := rewards.ParseStarTier(f, s)
			return err
		})
	}

	for i, s := range raw.AdditionalSources {
		prefix := fmt.Sprintf("additional_sources[%d]", i)
		if utf8.RuneCountInString(strings.TrimSpace(s.Name)) > MaxSourceNameLength {
			errs = append(errs, generic.FieldError{
				Field:   prefix + ".name",
				Code:    "too_long",
				Message: fmt.Sprintf("must be at most %d characters", MaxSourceNameLength),
			})
		}
		nonNegative(prefix+".jades", s.Jades)
		nonNegative(prefix+".passes", s.Passes)
	}

	if strings.TrimSpace(raw.EndDate) == "" {
		errs = append(errs, generic.FieldError{Field: "end_date", Code: "required", Message: "an end date is required"})
	} else if end, err := generic.ParseDate(raw.EndDate); err != nil {
		errs = append(errs, generic.FieldError{Field: "end_date", Code: "invalid_date", Message: err.Error()})
	} else if !end.After(today) {
		errs = append(errs, generic.FieldError{Field: "end_date", Code: "not_future", Message: "must be after " + today.String()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Build validates then converts in one call.
func Build(raw RequestJSON, today generic.TimePoint) (rewards.Request, error) {
	if err := Validate(raw, today); err != nil {
		return rewards.Request{}, err
	}
	return ParseRequest(raw)
}
