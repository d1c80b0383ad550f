// Package handlers implements the one-handler-per-command layer the
// reducer dispatches to for every non-AdvanceDay command. Handlers assume
// the command has already passed validate.Validate; they never reject.
package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/econ"
)

// PostContract moves a draft from the inbox onto the board at the fee and
// salvage policy the caller chose, depositing any client prepayment into
// escrow.
func PostContract(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	draft, _ := s.Contracts.FindDraft(cmd.InboxID)

	board := state.BoardContract{
		ID:             types.BoardContractID(draft.ID),
		PostedDay:      s.Meta.DayIndex,
		Title:          draft.Title,
		Rank:           draft.RankSuggested,
		Fee:            types.Copper(cmd.Fee),
		Salvage:        cmd.Salvage,
		BaseDifficulty: draft.BaseDifficulty,
		Status:         types.BoardStatusOpen,
		ClientDeposit:  draft.ClientDeposit,
	}
	s.Contracts.Inbox = s.Contracts.RemoveDraft(draft.ID)
	s.Contracts.Board = append(s.Contracts.Board, board)

	s.Economy = econ.EscrowOnPost(s.Economy, board.Fee, board.ClientDeposit)

	ctx.EmitEvent(events.ContractPosted{
		BoardID:       board.ID,
		Fee:           int64(board.Fee),
		Salvage:       board.Salvage,
		ClientDeposit: int64(board.ClientDeposit),
	})
	return s
}
