// Package validate implements the pure pre-mutation check the reducer runs
// before dispatching any command. It never mutates state.
package validate

import (
	"fmt"

	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/state"
	"guildhall/core/types"
)

// Result is the outcome of validating a command: either Valid, or Rejected
// with a stable reason and a human-readable detail.
type Result struct {
	Ok     bool
	Reason events.RejectReason
	Detail string
}

func valid() Result { return Result{Ok: true} }

func rejected(reason events.RejectReason, detail string) Result {
	return Result{Ok: false, Reason: reason, Detail: detail}
}

// Validate checks cmd against s and returns Valid or Rejected. It never
// mutates s.
func Validate(s state.GameState, cmd command.Command) Result {
	switch cmd.Kind {
	case command.AdvanceDay:
		return valid()

	case command.PostContract:
		if cmd.Fee < 0 {
			return rejected(events.ReasonInvalidArgument, "fee must be >= 0")
		}
		if !cmd.Salvage.Valid() {
			return rejected(events.ReasonInvalidArgument, "invalid salvage policy")
		}
		if _, ok := s.Contracts.FindDraft(cmd.InboxID); !ok {
			return rejected(events.ReasonNotFound, fmt.Sprintf("inbox contract %d not found", cmd.InboxID))
		}
		available := s.Economy.Available()
		if available < types.Copper(cmd.Fee) {
			return rejected(events.ReasonInvalidState, fmt.Sprintf("available funds %d < fee %d", available, cmd.Fee))
		}
		return valid()

	case command.CloseReturn:
		packet, ok := s.Contracts.FindReturnByActive(cmd.ActiveID)
		if !ok {
			return rejected(events.ReasonNotFound, fmt.Sprintf("return packet for active %d not found", cmd.ActiveID))
		}
		if !packet.RequiresPlayerClose {
			return rejected(events.ReasonInvalidState, fmt.Sprintf("active %d does not require a manual close", cmd.ActiveID))
		}
		board, ok := s.Contracts.FindBoard(packet.BoardContractID)
		if !ok {
			return rejected(events.ReasonNotFound, fmt.Sprintf("board contract %d not found", packet.BoardContractID))
		}
		if s.Economy.MoneyCopper < board.Fee || s.Economy.ReservedCopper < board.Fee {
			return rejected(events.ReasonInvalidState, fmt.Sprintf("insufficient escrow to cover fee %d", board.Fee))
		}
		return valid()

	case command.SellTrophies:
		if cmd.Amount > 0 && s.Economy.TrophiesStock < cmd.Amount {
			return rejected(events.ReasonInvalidState, fmt.Sprintf("trophies_stock %d < amount %d", s.Economy.TrophiesStock, cmd.Amount))
		}
		return valid()

	case command.PayTax:
		if cmd.Amount <= 0 {
			return rejected(events.ReasonInvalidArgument, "amount must be > 0")
		}
		if s.Economy.MoneyCopper < types.Copper(cmd.Amount) {
			return rejected(events.ReasonInvalidState, fmt.Sprintf("money_copper %d < amount %d", s.Economy.MoneyCopper, cmd.Amount))
		}
		return valid()

	case command.SetProofPolicy:
		if !cmd.ProofPolicy.Valid() {
			return rejected(events.ReasonInvalidArgument, "invalid proof policy")
		}
		return valid()

	case command.CreateContract:
		if cmd.Title == "" {
			return rejected(events.ReasonInvalidArgument, "title must not be empty")
		}
		if !cmd.Rank.Valid() {
			return rejected(events.ReasonInvalidArgument, "invalid rank")
		}
		if !cmd.Salvage.Valid() {
			return rejected(events.ReasonInvalidArgument, "invalid salvage policy")
		}
		if cmd.Fee < 0 {
			return rejected(events.ReasonInvalidArgument, "fee must be >= 0")
		}
		if cmd.BaseDifficulty < 0 {
			return rejected(events.ReasonInvalidArgument, "base_difficulty must be >= 0")
		}
		return valid()

	case command.UpdateContractTerms:
		if !findAnyContract(s, cmd.ContractID) {
			return rejected(events.ReasonNotFound, fmt.Sprintf("contract %d not found", cmd.ContractID))
		}
		if cmd.HasFee && cmd.Fee < 0 {
			return rejected(events.ReasonInvalidArgument, "fee must be >= 0")
		}
		if cmd.HasSalvage && !cmd.Salvage.Valid() {
			return rejected(events.ReasonInvalidArgument, "invalid salvage policy")
		}
		return valid()

	case command.CancelContract:
		if !findAnyContract(s, cmd.ContractID) {
			return rejected(events.ReasonNotFound, fmt.Sprintf("contract %d not found", cmd.ContractID))
		}
		if board, ok := s.Contracts.FindBoard(types.BoardContractID(cmd.ContractID)); ok && board.Status != types.BoardStatusOpen {
			return rejected(events.ReasonInvalidState, fmt.Sprintf("board contract %d is not OPEN", cmd.ContractID))
		}
		return valid()

	default:
		return rejected(events.ReasonInvalidArgument, fmt.Sprintf("unknown command kind %d", cmd.Kind))
	}
}

// findAnyContract reports whether id names an inbox draft or a board
// contract. UpdateContractTerms and CancelContract may target either.
func findAnyContract(s state.GameState, id int64) bool {
	if _, ok := s.Contracts.FindDraft(types.ContractDraftID(id)); ok {
		return true
	}
	if _, ok := s.Contracts.FindBoard(types.BoardContractID(id)); ok {
		return true
	}
	return false
}
