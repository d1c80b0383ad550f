package pipeline

import (
	"sort"

	"guildhall/core/events"
	"guildhall/core/rng"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

var autoResolveBuckets = []types.AutoResolveBucket{types.AutoResolveGood, types.AutoResolveNeutral, types.AutoResolveBad}

// AutoResolveInbox runs Phase 3: ages out any draft whose
// next_auto_resolve_day has arrived, sampling GOOD/NEUTRAL/BAD for each in
// ascending id order, then applies any accumulated stability penalty once.
func AutoResolveInbox(s state.GameState, r *rng.Source, ctx *seqctx.Context) (state.GameState, error) {
	due := make([]types.ContractDraftID, 0)
	for _, d := range s.Contracts.Inbox {
		if d.NextAutoResolveDay <= s.Meta.DayIndex {
			due = append(due, d.ID)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })

	penalty := 0
	for _, id := range due {
		roll, err := r.NextInt(int32(len(autoResolveBuckets)))
		if err != nil {
			return s, err
		}
		bucket := autoResolveBuckets[roll]
		ctx.EmitEvent(events.ContractAutoResolved{DraftID: id, Bucket: bucket})

		switch bucket {
		case types.AutoResolveGood:
			s.Contracts.Inbox = s.Contracts.RemoveDraft(id)
		case types.AutoResolveNeutral:
			for i, d := range s.Contracts.Inbox {
				if d.ID == id {
					s.Contracts.Inbox[i].NextAutoResolveDay = s.Meta.DayIndex + AutoResolveIntervalDays
				}
			}
		case types.AutoResolveBad:
			s.Contracts.Inbox = s.Contracts.RemoveDraft(id)
			penalty += StabilityPenaltyBadAutoResolve
		}
	}

	if penalty != 0 {
		old := s.Region.Stability
		newStability := types.Clamp(old-penalty, 0, 100)
		s.Region.Stability = newStability
		ctx.EmitEvent(events.StabilityUpdated{Old: old, New: newStability})
	}

	return s, nil
}
