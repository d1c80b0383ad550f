package pipeline

import (
	"sort"

	"guildhall/core/events"
	"guildhall/core/rng"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

// GenerateInbox runs Phase 1: creates N_inbox = RANK_MULTIPLIER_BASE ×
// inbox_multiplier(rank) new drafts and appends them to the inbox. Draws,
// per draft, in order: suggested payout, client-pays flag, base difficulty,
// suggested salvage policy, title.
func GenerateInbox(s state.GameState, r *rng.Source, ctx *seqctx.Context) (state.GameState, error) {
	n := RankMultiplierBase * inboxMultiplier(s.Guild.Rank)
	ids := make([]types.ContractDraftID, 0, n)

	for i := 0; i < n; i++ {
		payout, err := SamplePayoutCopper(r, s.Guild.Rank)
		if err != nil {
			return s, err
		}

		clientPaysRoll, err := r.NextInt(100)
		if err != nil {
			return s, err
		}
		var deposit types.Copper
		if int(clientPaysRoll) < ClientPaysChancePercent {
			deposit = types.ApplyBP(types.Copper(payout), ClientPaysFractionBP)
		}

		difficulty, err := SampleBaseDifficulty(r, s.Region.Stability)
		if err != nil {
			return s, err
		}

		salvageRoll, err := r.NextInt(3)
		if err != nil {
			return s, err
		}
		salvage := []types.SalvagePolicy{types.SalvageGuild, types.SalvageHero, types.SalvageSplit}[salvageRoll]

		title, err := SampleContractTitle(r)
		if err != nil {
			return s, err
		}

		id, meta := s.Meta.IssueContractID()
		s.Meta = meta

		draft := state.ContractDraft{
			ID:                 types.ContractDraftID(id),
			CreatedDay:         s.Meta.DayIndex,
			NextAutoResolveDay: s.Meta.DayIndex + AutoResolveIntervalDays,
			Title:              title,
			RankSuggested:      s.Guild.Rank,
			FeeOffered:         types.Copper(payout),
			Salvage:            salvage,
			BaseDifficulty:     difficulty,
			ClientDeposit:      deposit,
		}
		s.Contracts.Inbox = append(s.Contracts.Inbox, draft)
		ids = append(ids, draft.ID)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ctx.EmitEvent(events.InboxGenerated{DraftIDs: ids})
	return s, nil
}
