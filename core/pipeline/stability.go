package pipeline

import (
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

// UpdateStability runs Phase 6: nets successes minus failures among the
// day's auto-closed resolutions, clamps the result into [0,100], and emits
// StabilityUpdated if it changed.
func UpdateStability(s state.GameState, tally resolutionTally, ctx *seqctx.Context) state.GameState {
	delta := tally.successes - tally.failures
	if delta == 0 {
		return s
	}
	old := s.Region.Stability
	newStability := types.Clamp(old+delta, 0, 100)
	if newStability == old {
		return s
	}
	s.Region.Stability = newStability
	ctx.EmitEvent(events.StabilityUpdated{Old: old, New: newStability})
	return s
}
