package pipeline

import (
	"guildhall/core/rng"
	"guildhall/core/types"
)

// resolutionChances computes p_success/p_partial/p_fail percentages for a
// contract's difficulty and party power. The three values always sum to
// 100 given the construction-time constants invariant.
func resolutionChances(power, difficulty int) (success, partial, fail int) {
	raw := (power - difficulty + 5) * 20
	success = types.Clamp(raw, SuccessChanceMin, SuccessChanceMax)
	partial = PartialChanceFixed
	fail = 100 - success - partial
	return success, partial, fail
}

// rollOutcome draws the resolution roll and the MISSING_CHANCE_PERCENT
// escalation roll, returning the resulting Outcome. A FAIL has a
// MISSING_CHANCE_PERCENT chance of being escalated to DEATH; SUCCESS and
// PARTIAL are never escalated.
func rollOutcome(r *rng.Source, power, difficulty int) (types.Outcome, error) {
	success, partial, _ := resolutionChances(power, difficulty)

	roll, err := r.NextInt(100)
	if err != nil {
		return 0, err
	}

	var outcome types.Outcome
	switch {
	case int(roll) < success:
		outcome = types.OutcomeSuccess
	case int(roll) < success+partial:
		outcome = types.OutcomePartial
	default:
		outcome = types.OutcomeFail
	}

	if outcome == types.OutcomeFail {
		escalate, err := r.NextInt(100)
		if err != nil {
			return 0, err
		}
		if int(escalate) < MissingChancePercent {
			outcome = types.OutcomeDeath
		}
	}

	return outcome, nil
}
