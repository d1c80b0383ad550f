package pipeline

import (
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

// evaluateGuildProgression increments completed_contracts_total and, if the
// threshold for the next rank has been crossed, advances rank and doubles
// the threshold for the rank after that. No-ops once the guild has reached
// rank S. Emits GuildRankUp on advancement.
func evaluateGuildProgression(s state.GameState, ctx *seqctx.Context) state.GameState {
	s.Guild.CompletedContractsTot++

	if s.Guild.Rank == types.RankS {
		return s
	}
	if s.Guild.CompletedContractsTot < s.Guild.ContractsForNextRank {
		return s
	}

	old := s.Guild.Rank
	s.Guild.Rank = old + 1
	s.Guild.ContractsForNextRank *= 2
	ctx.EmitEvent(events.GuildRankUp{OldRank: old, NewRank: s.Guild.Rank})
	return s
}
