package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/econ"
)

// UpdateContractTerms changes an unposted draft's or an OPEN board
// contract's fee and/or salvage policy, whichever field was supplied.
func UpdateContractTerms(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	for i := range s.Contracts.Inbox {
		if int64(s.Contracts.Inbox[i].ID) != cmd.ContractID {
			continue
		}
		if cmd.HasFee {
			s.Contracts.Inbox[i].FeeOffered = types.Copper(cmd.Fee)
		}
		if cmd.HasSalvage {
			s.Contracts.Inbox[i].Salvage = cmd.Salvage
		}
		ctx.EmitEvent(events.ContractUpdated{
			ContractID: cmd.ContractID,
			Fee:        int64(s.Contracts.Inbox[i].FeeOffered),
			Salvage:    s.Contracts.Inbox[i].Salvage,
		})
		return s
	}

	for i := range s.Contracts.Board {
		if int64(s.Contracts.Board[i].ID) != cmd.ContractID {
			continue
		}
		if cmd.HasFee {
			oldFee := s.Contracts.Board[i].Fee
			s.Contracts.Board[i].Fee = types.Copper(cmd.Fee)
			s.Economy = econ.AdjustReserve(s.Economy, types.Copper(cmd.Fee)-oldFee)
		}
		if cmd.HasSalvage {
			s.Contracts.Board[i].Salvage = cmd.Salvage
		}
		ctx.EmitEvent(events.ContractUpdated{
			ContractID: cmd.ContractID,
			Fee:        int64(s.Contracts.Board[i].Fee),
			Salvage:    s.Contracts.Board[i].Salvage,
		})
		return s
	}

	return s
}
