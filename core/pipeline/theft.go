package pipeline

import (
	"guildhall/core/rng"
	"guildhall/core/types"
)

// theftChancePercent scales with a hero's greed and is strongest when the
// guild would otherwise keep everything (GUILD salvage), weaker under
// SPLIT, and absent under HERO salvage since the hero already keeps all
// trophies honestly.
func theftChancePercent(policy types.SalvagePolicy, greed int) int {
	switch policy {
	case types.SalvageGuild:
		return greed / 2
	case types.SalvageSplit:
		return greed / 4
	default: // SalvageHero
		return 0
	}
}

// rollTheft applies the theft model to a non-DEATH resolution's expected
// trophy count: with theftChancePercent odds, the reported count is halved
// (floor) and suspected is true. DEATH never reaches this check.
func rollTheft(r *rng.Source, policy types.SalvagePolicy, greed, expectedCount int) (reportedCount int, suspected bool, err error) {
	if expectedCount <= 0 {
		return expectedCount, false, nil
	}
	chance := theftChancePercent(policy, greed)
	if chance <= 0 {
		return expectedCount, false, nil
	}
	roll, err := r.NextInt(100)
	if err != nil {
		return expectedCount, false, err
	}
	if int(roll) >= chance {
		return expectedCount, false, nil
	}
	return expectedCount / 2, true, nil
}
