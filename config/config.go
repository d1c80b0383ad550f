// Package config loads the engine's balance constants from a TOML file. A
// missing file is populated with the built-in defaults and written back so
// operators get a starting point to edit.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Constants bundles every balance knob referenced by core/pipeline, so a
// deployment can retune the simulation without a rebuild.
type Constants struct {
	RankMultiplierBase int `toml:"RankMultiplierBase"`

	ClientPaysChancePercent int   `toml:"ClientPaysChancePercent"`
	ClientPaysFractionBP    int64 `toml:"ClientPaysFractionBP"`

	StabilityPenaltyBadAutoResolve int `toml:"StabilityPenaltyBadAutoResolve"`
	AutoResolveIntervalDays        int `toml:"AutoResolveIntervalDays"`

	SuccessChanceMin   int `toml:"SuccessChanceMin"`
	SuccessChanceMax   int `toml:"SuccessChanceMax"`
	PartialChanceFixed int `toml:"PartialChanceFixed"`
	FailChanceMin      int `toml:"FailChanceMin"`

	MissingChancePercent int `toml:"MissingChancePercent"`

	PayoutATailChancePercent int `toml:"PayoutATailChancePercent"`

	TaxPenaltyPercent int   `toml:"TaxPenaltyPercent"`
	TaxMaxMissed      int   `toml:"TaxMaxMissed"`
	TaxIntervalDays   int   `toml:"TaxIntervalDays"`
	TaxBaseAmountGold int64 `toml:"TaxBaseAmountGold"`

	PricePerTrophyCopper int64 `toml:"PricePerTrophyCopper"`
}

// Default returns the built-in constants.
func Default() Constants {
	return Constants{
		RankMultiplierBase: 2,

		ClientPaysChancePercent: 50,
		ClientPaysFractionBP:    5000,

		StabilityPenaltyBadAutoResolve: 2,
		AutoResolveIntervalDays:        7,

		SuccessChanceMin:   5,
		SuccessChanceMax:   85,
		PartialChanceFixed: 14,
		FailChanceMin:      1,

		MissingChancePercent: 10,

		PayoutATailChancePercent: 10,

		TaxPenaltyPercent: 10,
		TaxMaxMissed:      3,
		TaxIntervalDays:   7,
		TaxBaseAmountGold: 5,

		PricePerTrophyCopper: 200,
	}
}

// Validate enforces the construction-time constraint on resolution
// chances: success+partial must leave room for at least FailChanceMin
// percent of fail outcomes.
func (c Constants) Validate() error {
	if c.SuccessChanceMax+c.PartialChanceFixed > 100-c.FailChanceMin {
		return fmt.Errorf("config: inconsistent balance constants: success_max(%d)+partial_fixed(%d) leaves less than fail_min(%d) percent",
			c.SuccessChanceMax, c.PartialChanceFixed, c.FailChanceMin)
	}
	return nil
}

// Load reads Constants from path, creating the file with built-in defaults
// if it does not yet exist. It always validates before returning.
func Load(path string) (Constants, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	c := Default()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Constants{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Constants{}, err
	}
	return c, nil
}

func createDefault(path string) (Constants, error) {
	c := Default()
	f, err := os.Create(path)
	if err != nil {
		return Constants{}, fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return Constants{}, fmt.Errorf("config: write default %s: %w", path, err)
	}
	return c, nil
}
