package pipeline

import (
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
)

// DayStart runs Phase 0: increments day_index, clears arrivals_today, and
// emits DayStarted.
func DayStart(s state.GameState, ctx *seqctx.Context) state.GameState {
	s.Meta.DayIndex++
	s.Heroes.ArrivalsToday = nil
	ctx.EmitEvent(events.DayStarted{Day: s.Meta.DayIndex})
	return s
}
