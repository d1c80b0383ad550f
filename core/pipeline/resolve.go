package pipeline

import (
	"guildhall/core/events"
	"guildhall/core/rng"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/econ"
)

// resolutionTally accumulates the auto-closed outcome counts Phase 6 needs
// to compute the day's stability delta.
type resolutionTally struct {
	successes int
	failures  int
}

// resolveActive runs the full resolution sequence for a single WIP active
// contract that has just reached zero days remaining — outcome, quality,
// trophies, theft, journal, settle-or-park — returning the updated state
// and the tally contribution for the stability phase.
func resolveActive(s state.GameState, active state.ActiveContract, r *rng.Source, ctx *seqctx.Context) (state.GameState, resolutionTally, error) {
	var tally resolutionTally

	board, ok := s.Contracts.FindBoard(active.BoardContractID)
	if !ok {
		return s, tally, nil
	}

	power := partyPower(s, active.HeroIDs)
	outcome, err := rollOutcome(r, power, board.BaseDifficulty)
	if err != nil {
		return s, tally, err
	}

	quality, err := rollQuality(r)
	if err != nil {
		return s, tally, err
	}

	expectedCount, err := rollTrophyCount(r, outcome)
	if err != nil {
		return s, tally, err
	}

	reportedCount := expectedCount
	suspectedTheft := false
	if outcome != types.OutcomeDeath {
		greed := 0
		if len(active.HeroIDs) > 0 {
			if hero, ok := s.Heroes.Find(active.HeroIDs[0]); ok {
				greed = hero.Traits.Greed
			}
		}
		reportedCount, suspectedTheft, err = rollTheft(r, board.Salvage, greed, expectedCount)
		if err != nil {
			return s, tally, err
		}
		if suspectedTheft {
			ctx.EmitEvent(events.TrophyTheftSuspected{
				ActiveID:      active.ID,
				ExpectedCount: expectedCount,
				ReportedCount: reportedCount,
			})
		}
	}

	requiresPlayerClose := outcome == types.OutcomePartial

	ctx.EmitEvent(events.ContractResolved{
		ActiveID:            active.ID,
		Outcome:             outcome,
		Quality:             quality,
		TrophiesCount:       reportedCount,
		RequiresPlayerClose: requiresPlayerClose,
	})

	reasonTags := make([]string, 0, 1)
	if suspectedTheft {
		reasonTags = append(reasonTags, "suspected_theft")
	}

	packet := state.ReturnPacket{
		ActiveContractID:    active.ID,
		BoardContractID:     board.ID,
		HeroIDs:             append([]types.HeroID(nil), active.HeroIDs...),
		ResolvedDay:         s.Meta.DayIndex,
		Outcome:             outcome,
		TrophiesCount:       reportedCount,
		TrophiesQuality:     quality,
		ReasonTags:          reasonTags,
		RequiresPlayerClose: requiresPlayerClose,
		SuspectedTheft:      suspectedTheft,
	}
	s.Contracts.Returns = append(s.Contracts.Returns, packet)

	if requiresPlayerClose {
		for i := range s.Contracts.Active {
			if s.Contracts.Active[i].ID == active.ID {
				s.Contracts.Active[i].Status = types.ActiveStatusReturnReady
			}
		}
		return s, tally, nil
	}

	s = settleResolution(s, board, outcome, reportedCount)

	for i := range s.Contracts.Active {
		if s.Contracts.Active[i].ID == active.ID {
			s.Contracts.Active[i].Status = types.ActiveStatusClosed
		}
	}

	for _, heroID := range active.HeroIDs {
		if outcome == types.OutcomeDeath {
			s.Heroes.Roster = s.Heroes.Remove(heroID)
			s.Heroes.ArrivalsToday = s.Heroes.RemoveFromArrivals(heroID)
			ctx.EmitEvent(events.HeroDied{HeroID: heroID})
			continue
		}
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

	if outcome == types.OutcomeSuccess {
		tally.successes = 1
		s = evaluateGuildProgression(s, ctx)
	} else {
		tally.failures = 1
	}

	ctx.EmitEvent(events.ReturnClosed{ActiveID: active.ID, BoardID: board.ID})

	return s, tally, nil
}

// settleResolution applies the economy-settlement rules for an auto-closed
// resolution: pay and release on SUCCESS/PARTIAL, release unpaid on
// FAIL/DEATH.
func settleResolution(s state.GameState, board state.BoardContract, outcome types.Outcome, reportedCount int) state.GameState {
	switch outcome {
	case types.OutcomeSuccess, types.OutcomePartial:
		s.Economy = econ.SettleSuccess(s.Economy, board.Fee)
		if board.Salvage != types.SalvageHero {
			s.Economy = econ.AddTrophies(s.Economy, int64(econ.GuildTrophyShare(board.Salvage, reportedCount)))
		}
	default: // FAIL, DEATH
		s.Economy = econ.ReleaseOnFailure(s.Economy, board.Fee)
	}
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
