package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/econ"
)

// CancelContract removes an unposted draft or an OPEN board contract,
// refunding any client deposit already escrowed.
func CancelContract(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	if _, ok := s.Contracts.FindDraft(types.ContractDraftID(cmd.ContractID)); ok {
		s.Contracts.Inbox = s.Contracts.RemoveDraft(types.ContractDraftID(cmd.ContractID))
		ctx.EmitEvent(events.ContractCancelled{ContractID: cmd.ContractID, Refunded: 0})
		return s
	}

	board, ok := s.Contracts.FindBoard(types.BoardContractID(cmd.ContractID))
	if !ok {
		return s
	}
	out := make([]state.BoardContract, 0, len(s.Contracts.Board))
	for _, b := range s.Contracts.Board {
		if b.ID != board.ID {
			out = append(out, b)
		}
	}
	s.Contracts.Board = out

	s.Economy = econ.ReleaseOnCancel(s.Economy, board.Fee, board.ClientDeposit)

	ctx.EmitEvent(events.ContractCancelled{ContractID: cmd.ContractID, Refunded: int64(board.ClientDeposit)})
	return s
}
