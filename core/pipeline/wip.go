package pipeline

import (
	"sort"

	"guildhall/core/events"
	"guildhall/core/rng"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

// AdvanceWIP runs Phase 5: decrements every WIP active contract's
// days_remaining by one, in ascending id order, resolving any that reach
// zero. Returns the day's success/failure tally for Phase 6.
func AdvanceWIP(s state.GameState, r *rng.Source, ctx *seqctx.Context) (state.GameState, resolutionTally, error) {
	var tally resolutionTally

	wipIDs := make([]types.ActiveContractID, 0)
	for _, a := range s.Contracts.Active {
		if a.Status == types.ActiveStatusWIP {
			wipIDs = append(wipIDs, a.ID)
		}
	}
	sort.Slice(wipIDs, func(i, j int) bool { return wipIDs[i] < wipIDs[j] })

	for _, id := range wipIDs {
		active, ok := s.Contracts.FindActive(id)
		if !ok {
			continue
		}
		active.DaysRemaining--
		for i := range s.Contracts.Active {
			if s.Contracts.Active[i].ID == id {
				s.Contracts.Active[i].DaysRemaining = active.DaysRemaining
			}
		}
		ctx.EmitEvent(events.WipAdvanced{ActiveID: id, DaysRemaining: active.DaysRemaining})

		if active.DaysRemaining > 0 {
			continue
		}

		var delta resolutionTally
		var err error
		s, delta, err = resolveActive(s, active, r, ctx)
		if err != nil {
			return s, tally, err
		}
		tally.successes += delta.successes
		tally.failures += delta.failures
	}

	return s, tally, nil
}
