package rewards

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warp/jade-forecast/generic"
)

// rawCatalog mirrors the YAML file. Pointers and nil slices mean "not set,
// keep the default".
type rawCatalog struct {
	Jades struct {
		LoginDaily         *int64             `yaml:"login_daily,omitempty"`
		ExpressSupplyDaily *int64             `yaml:"express_supply_daily,omitempty"`
		BattlePass         rawBattlePass      `yaml:"battle_pass,omitempty"`
		PointRewards       []int64            `yaml:"point_rewards,omitempty,flow"`
		EndgameStars       []int64            `yaml:"endgame_stars,omitempty,flow"`
		ModeStars          map[string][]int64 `yaml:"mode_stars,omitempty"`
	} `yaml:"jades"`
	Passes struct {
		BattlePass     rawBattlePass `yaml:"battle_pass,omitempty"`
		EmbersExchange *int64        `yaml:"embers_exchange,omitempty"`
	} `yaml:"passes"`
	Resets struct {
		MemoryOfChaos     string `yaml:"memory_of_chaos,omitempty"`
		PureFiction       string `yaml:"pure_fiction,omitempty"`
		ApocalypticShadow string `yaml:"apocalyptic_shadow,omitempty"`
		BattlePass        string `yaml:"battle_pass,omitempty"`
	} `yaml:"resets"`
	EndgameIntervalDays    *int   `yaml:"endgame_interval_days,omitempty"`
	BattlePassIntervalDays *int   `yaml:"battle_pass_interval_days,omitempty"`
	JadesPerPull           *int64 `yaml:"jades_per_pull,omitempty"`
}

type rawBattlePass struct {
	NamelessGlory *int64 `yaml:"nameless_glory,omitempty"`
	NamelessMedal *int64 `yaml:"nameless_medal,omitempty"`
}

// LoadCatalog reads a YAML override file and merges it over the defaults.
// A missing file yields the defaults. The merged catalog is validated.
func LoadCatalog(path string) (Catalog, error) {
	cat := DefaultCatalog()
	if path == "" {
		return cat, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cat, nil
		}
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(b)
}

// ParseCatalog merges YAML bytes over the defaults.
func ParseCatalog(b []byte) (Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", generic.ErrInvalidCatalog, err)
	}

	cat, err := mergeRaw(DefaultCatalog(), raw)
	if err != nil {
		return Catalog{}, err
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// MarshalCatalog renders a catalog in the same YAML shape LoadCatalog reads.
func MarshalCatalog(c Catalog) ([]byte, error) {
	return yaml.Marshal(toRaw(c))
}

// mergeRaw applies every field set in b over a. Tables replace wholesale.
func mergeRaw(a Catalog, b rawCatalog) (Catalog, error) {
	out := a

	setInt64(&out.Jades.LoginDaily, b.Jades.LoginDaily)
	setInt64(&out.Jades.ExpressSupplyDaily, b.Jades.ExpressSupplyDaily)
	setInt64(&out.Jades.BattlePass.NamelessGlory, b.Jades.BattlePass.NamelessGlory)
	setInt64(&out.Jades.BattlePass.NamelessMedal, b.Jades.BattlePass.NamelessMedal)
	if b.Jades.PointRewards != nil {
		out.Jades.PointRewards = b.Jades.PointRewards
	}
	if b.Jades.EndgameStars != nil {
		out.Jades.EndgameStars = b.Jades.EndgameStars
	}
	if len(b.Jades.ModeStars) > 0 {
		modes := make(map[Mode][]int64, len(a.Jades.ModeStars))
		for m, t := range a.Jades.ModeStars {
			modes[m] = t
		}
		for name, t := range b.Jades.ModeStars {
			m := Mode(name)
			if !isMode(m) {
				return Catalog{}, fmt.Errorf("%w: unknown endgame mode %q", generic.ErrInvalidCatalog, name)
			}
			modes[m] = t
		}
		out.Jades.ModeStars = modes
	}

	setInt64(&out.Passes.BattlePass.NamelessGlory, b.Passes.BattlePass.NamelessGlory)
	setInt64(&out.Passes.BattlePass.NamelessMedal, b.Passes.BattlePass.NamelessMedal)
	setInt64(&out.Passes.EmbersExchange, b.Passes.EmbersExchange)

	dates := []struct {
		raw string
		dst *generic.TimePoint
	}{
		{b.Resets.MemoryOfChaos, &out.Resets.MemoryOfChaos},
		{b.Resets.PureFiction, &out.Resets.PureFiction},
		{b.Resets.ApocalypticShadow, &out.Resets.ApocalypticShadow},
		{b.Resets.BattlePass, &out.Resets.BattlePass},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		tp, err := generic.ParseDate(d.raw)
		if err != nil {
			return Catalog{}, fmt.Errorf("%w: %v", generic.ErrInvalidCatalog, err)
		}
		*d.dst = tp
	}

	if b.EndgameIntervalDays != nil {
		out.EndgameIntervalDays = *b.EndgameIntervalDays
	}
	if b.BattlePassIntervalDays != nil {
		out.BattlePassIntervalDays = *b.BattlePassIntervalDays
	}
	setInt64(&out.JadesPerPull, b.JadesPerPull)

	return out, nil
}

func toRaw(c Catalog) rawCatalog {
	var raw rawCatalog
	raw.Jades.LoginDaily = &c.Jades.LoginDaily
	raw.Jades.ExpressSupplyDaily = &c.Jades.ExpressSupplyDaily
	raw.Jades.BattlePass = rawBattlePass{NamelessGlory: &c.Jades.BattlePass.NamelessGlory, NamelessMedal: &c.Jades.BattlePass.NamelessMedal}
	raw.Jades.PointRewards = c.Jades.PointRewards
	raw.Jades.EndgameStars = c.Jades.EndgameStars
	raw.Jades.ModeStars = make(map[string][]int64, len(c.Jades.ModeStars))
	for m, t := range c.Jades.ModeStars {
		raw.Jades.ModeStars[string(m)] = t
	}
	raw.Passes.BattlePass = rawBattlePass{NamelessGlory: &c.Passes.BattlePass.NamelessGlory, NamelessMedal: &c.Passes.BattlePass.NamelessMedal}
	raw.Passes.EmbersExchange = &c.Passes.EmbersExchange
	raw.Resets.MemoryOfChaos = c.Resets.MemoryOfChaos.String()
	raw.Resets.PureFiction = c.Resets.PureFiction.String()
	raw.Resets.ApocalypticShadow = c.Resets.ApocalypticShadow.String()
	raw.Resets.BattlePass = c.Resets.BattlePass.String()
	raw.EndgameIntervalDays = &c.EndgameIntervalDays
	raw.BattlePassIntervalDays = &c.BattlePassIntervalDays
	raw.JadesPerPull = &c.JadesPerPull
	return raw
}

func setInt64(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func isMode(m Mode) bool {
	for _, known := range Modes() {
		if m == known {
			return true
		}
	}
	return false
}
