package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/econ"
)

// CloseReturn settles a PARTIAL resolution awaiting a manual decision: pays
// the fee, splits trophies per the board's salvage policy, frees the hero,
// and closes both the active contract and, if it was the board's last
// child, the board contract too.
func CloseReturn(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	packet, _ := s.Contracts.FindReturnByActive(cmd.ActiveID)
	board, _ := s.Contracts.FindBoard(packet.BoardContractID)

	s.Economy = econ.SettleSuccess(s.Economy, board.Fee)
	if board.Salvage != types.SalvageHero {
		s.Economy = econ.AddTrophies(s.Economy, int64(econ.GuildTrophyShare(board.Salvage, packet.TrophiesCount)))
	}

	for i := range s.Contracts.Active {
		if s.Contracts.Active[i].ID == cmd.ActiveID {
			s.Contracts.Active[i].Status = types.ActiveStatusClosed
		}
	}
	s.Contracts.Returns = s.Contracts.RemoveReturn(cmd.ActiveID)

	for _, heroID := range packet.HeroIDs {
		for i := range s.Heroes.Roster {
			if s.Heroes.Roster[i].ID == heroID {
				s.Heroes.Roster[i].Status = state.HeroAvailable
				s.Heroes.Roster[i].HistoryCompleted++
			}
		}
	}

	if boardFullyClosed(s, board.ID) {
		for i := range s.Contracts.Board {
			if s.Contracts.Board[i].ID == board.ID {
				s.Contracts.Board[i].Status = types.BoardStatusCompleted
			}
		}
	}

	s.Guild.CompletedContractsTot++
	if s.Guild.Rank != types.RankS && s.Guild.CompletedContractsTot >= s.Guild.ContractsForNextRank {
		old := s.Guild.Rank
		s.Guild.Rank = old + 1
		s.Guild.ContractsForNextRank *= 2
		ctx.EmitEvent(events.GuildRankUp{OldRank: old, NewRank: s.Guild.Rank})
	}

	ctx.EmitEvent(events.ReturnClosed{ActiveID: cmd.ActiveID, BoardID: board.ID})
	return s
}

// boardFullyClosed reports whether every active child of boardID is now
// CLOSED.
func boardFullyClosed(s state.GameState, boardID types.BoardContractID) bool {
	found := false
	for _, a := range s.Contracts.Active {
		if a.BoardContractID != boardID {
			continue
		}
		found = true
		if a.Status != types.ActiveStatusClosed {
			return false
		}
	}
	return found
}
