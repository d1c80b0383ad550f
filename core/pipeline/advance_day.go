package pipeline

import (
	"guildhall/core/rng"
	"guildhall/core/seqctx"
	"guildhall/core/state"
)

// AdvanceDay runs the full nine-phase day tick in fixed order. Phase order
// and the ascending-id iteration within each phase are part of the replay
// contract.
func AdvanceDay(s state.GameState, r *rng.Source, ctx *seqctx.Context) (state.GameState, error) {
	var err error

	s = DayStart(s, ctx)

	s, err = GenerateInbox(s, r, ctx)
	if err != nil {
		return s, err
	}

	s, err = GenerateArrivals(s, r, ctx)
	if err != nil {
		return s, err
	}

	s, err = AutoResolveInbox(s, r, ctx)
	if err != nil {
		return s, err
	}

	s = RunPickup(s, ctx)

	s, tally, err := AdvanceWIP(s, r, ctx)
	if err != nil {
		return s, err
	}

	s = UpdateStability(s, tally, ctx)

	s = EvaluateTax(s, ctx)

	EndDay(s, ctx)

	return s, nil
}
