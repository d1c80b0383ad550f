package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/econ"
)

// PayTax debits money and clears the outstanding balance, penalty first
// then the base amount due, capped at what was actually owed.
func PayTax(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	s.Economy = econ.PayTax(s.Economy, types.Copper(cmd.Amount))

	remaining := cmd.Amount
	if s.Meta.TaxPenalty > 0 {
		cleared := remaining
		if cleared > s.Meta.TaxPenalty {
			cleared = s.Meta.TaxPenalty
		}
		s.Meta.TaxPenalty -= cleared
		remaining -= cleared
	}
	if remaining > 0 && s.Meta.TaxAmountDue > 0 {
		cleared := remaining
		if cleared > s.Meta.TaxAmountDue {
			cleared = s.Meta.TaxAmountDue
		}
		s.Meta.TaxAmountDue -= cleared
	}
	if s.Meta.TaxAmountDue == 0 && s.Meta.TaxPenalty == 0 {
		s.Meta.TaxMissedCount = 0
	}

	ctx.EmitEvent(events.TaxPaid{Amount: cmd.Amount, RemainingDue: s.Meta.TaxAmountDue + s.Meta.TaxPenalty})
	return s
}
