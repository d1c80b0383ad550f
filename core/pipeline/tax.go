package pipeline

import (
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

// EvaluateTax runs Phase 7: if the due day has arrived, assesses a penalty
// on any outstanding balance (possibly shutting the guild down at
// TAX_MAX_MISSED), then advances the schedule and recomputes the next
// amount due.
func EvaluateTax(s state.GameState, ctx *seqctx.Context) state.GameState {
	if s.Meta.DayIndex < s.Meta.TaxDueDay {
		return s
	}

	if s.Meta.TaxAmountDue+s.Meta.TaxPenalty > 0 {
		s.Meta.TaxMissedCount++
		penalty := types.ApplyBP(types.Copper(s.Meta.TaxAmountDue), types.BasisPoints(TaxPenaltyPercent*100))
		s.Meta.TaxPenalty += int64(penalty)
		ctx.EmitEvent(events.TaxMissed{MissedCount: s.Meta.TaxMissedCount, Penalty: int64(penalty)})

		if s.Meta.TaxMissedCount >= TaxMaxMissed {
			ctx.EmitEvent(events.GuildShutdown{Reason: "tax_evasion"})
		}
	}

	s.Meta.TaxDueDay += TaxIntervalDays
	amount := types.GoldToCopper(TaxBaseAmountGold*taxRankMultiplier(s.Guild.Rank), 1)
	s.Meta.TaxAmountDue = int64(amount)
	ctx.EmitEvent(events.TaxDue{DueDay: s.Meta.TaxDueDay, Amount: s.Meta.TaxAmountDue})

	return s
}
