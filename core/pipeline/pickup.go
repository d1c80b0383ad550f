package pipeline

import (
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

// RunPickup runs Phase 4: each hero who arrived today (ascending id) looks
// at the lowest-id OPEN board contract and either declines or takes it.
func RunPickup(s state.GameState, ctx *seqctx.Context) state.GameState {
	arrivals := append([]types.HeroID(nil), s.Heroes.ArrivalsToday...)

	for _, heroID := range arrivals {
		hero, ok := s.Heroes.Find(heroID)
		if !ok || hero.Status != state.HeroAvailable {
			continue
		}

		board, ok := lowestOpenBoard(s.Contracts.Board)
		if !ok {
			continue
		}

		score := attractivenessScore(board, hero)
		if score < 0 {
			ctx.EmitEvent(events.HeroDeclined{
				HeroID:  heroID,
				BoardID: board.ID,
				Reason:  declineReason(board, hero),
			})
			continue
		}

		activeID, meta := s.Meta.IssueActiveID()
		s.Meta = meta
		active := state.ActiveContract{
			ID:              types.ActiveContractID(activeID),
			BoardContractID: board.ID,
			TakenDay:        s.Meta.DayIndex,
			DaysRemaining:   2,
			HeroIDs:         []types.HeroID{heroID},
			Status:          types.ActiveStatusWIP,
		}
		s.Contracts.Active = append(s.Contracts.Active, active)

		for i := range s.Contracts.Board {
			if s.Contracts.Board[i].ID == board.ID {
				s.Contracts.Board[i].Status = types.BoardStatusLocked
			}
		}
		for i := range s.Heroes.Roster {
			if s.Heroes.Roster[i].ID == heroID {
				s.Heroes.Roster[i].Status = state.HeroOnMission
			}
		}

		ctx.EmitEvent(events.ContractTaken{HeroID: heroID, BoardID: board.ID, ActiveID: active.ID})
	}

	return s
}

// lowestOpenBoard returns the OPEN board contract with the lowest id, if
// any.
func lowestOpenBoard(board []state.BoardContract) (state.BoardContract, bool) {
	var best state.BoardContract
	found := false
	for _, b := range board {
		if b.Status != types.BoardStatusOpen {
			continue
		}
		if !found || b.ID < best.ID {
			best = b
			found = true
		}
	}
	return best, found
}
