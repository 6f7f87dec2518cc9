package rewards

import "github.com/shopspring/decimal"

// Preset is a ready-made player profile. EndDate is left zero; the caller
// picks the horizon.
type Preset struct {
	ID          string
	Name        string
	Description string
	Request     Request
}

// Presets returns the built-in player profiles.
func Presets() []Preset {
	extras := func() []AdditionalSource {
		return []AdditionalSource{
			{Name: "event", Jades: decimal.NewFromInt(300), Passes: decimal.Zero},
			{Name: "patch gift", Jades: decimal.Zero, Passes: decimal.NewFromInt(10)},
		}
	}
	return []Preset{
		{
			ID:          "f2p",
			Name:        "Free-to-play",
			Description: "Dailies, weekly point rewards at equilibrium 6, embers exchange, 10 stars in every endgame mode",
			Request: Request{
				StartingJades:          decimal.Zero,
				StartingPasses:         decimal.Zero,
				PointRewards:           true,
				Equilibrium:            MaxEquilibriumLevel,
				EmbersExchange:         true,
				MemoryOfChaosStars:     10,
				PureFictionStars:       10,
				ApocalypticShadowStars: 10,
				AdditionalSources:      extras(),
			},
		},
		{
			ID:          "paid",
			Name:        "Express supply + battle pass",
			Description: "Free-to-play routine plus express supply pass, Nameless Medal, full stars",
			Request: Request{
				StartingJades:          decimal.Zero,
				StartingPasses:         decimal.Zero,
				ExpressSupplyPass:      true,
				PaidBattlePass:         true,
				BattlePassTier:         NamelessMedal,
				PointRewards:           true,
				Equilibrium:            MaxEquilibriumLevel,
				EmbersExchange:         true,
				MemoryOfChaosStars:     MaxStarTier,
				PureFictionStars:       MaxStarTier,
				ApocalypticShadowStars: MaxStarTier,
				AdditionalSources:      extras(),
			},
		},
	}
}

// FindPreset looks a preset up by ID.
func FindPreset(id string) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
