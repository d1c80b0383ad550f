package pipeline

import (
	"guildhall/core/rng"
	"guildhall/core/types"
)

// rollTrophyCount draws the base trophy count for outcome: SUCCESS is 1
// plus a small uniform bonus, PARTIAL is always 1, FAIL/DEATH recover
// nothing.
func rollTrophyCount(r *rng.Source, outcome types.Outcome) (int, error) {
	switch outcome {
	case types.OutcomeSuccess:
		bonus, err := r.NextInt(3)
		if err != nil {
			return 0, err
		}
		return 1 + int(bonus), nil
	case types.OutcomePartial:
		return 1, nil
	default:
		return 0, nil
	}
}
