package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/pipeline"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

// CreateContract inserts a new, player-authored draft directly into the
// inbox, bypassing the inbox generation roll.
func CreateContract(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	id, meta := s.Meta.IssueContractID()
	s.Meta = meta

	draft := state.ContractDraft{
		ID:                 types.ContractDraftID(id),
		CreatedDay:         s.Meta.DayIndex,
		NextAutoResolveDay: s.Meta.DayIndex + pipeline.AutoResolveIntervalDays,
		Title:              cmd.Title,
		RankSuggested:      cmd.Rank,
		FeeOffered:         types.Copper(cmd.Fee),
		Salvage:            cmd.Salvage,
		BaseDifficulty:     cmd.BaseDifficulty,
		ClientDeposit:      0,
	}
	s.Contracts.Inbox = append(s.Contracts.Inbox, draft)

	ctx.EmitEvent(events.ContractCreated{DraftID: draft.ID, Title: draft.Title, Rank: draft.RankSuggested})
	return s
}
