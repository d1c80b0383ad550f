package pipeline

import (
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
)

// EndDay runs Phase 8: captures a DaySnapshot and emits the terminal
// DayEnded event.
func EndDay(s state.GameState, ctx *seqctx.Context) {
	snapshot := events.DaySnapshot{
		Day:           s.Meta.DayIndex,
		Revision:      s.Meta.Revision,
		MoneyCopper:   int64(s.Economy.MoneyCopper),
		TrophiesStock: s.Economy.TrophiesStock,
		Stability:     s.Region.Stability,
		Reputation:    s.Guild.Reputation,
		InboxCount:    len(s.Contracts.Inbox),
		BoardCount:    len(s.Contracts.Board),
		ActiveCount:   len(s.Contracts.Active),
		ReturnsCount:  len(s.Contracts.Returns),
	}
	ctx.EmitEvent(events.DayEnded{Snapshot: snapshot})
}
