package pipeline

import (
	"testing"

	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

func pickupState() state.GameState {
	s := state.New(1)
	s.Meta.DayIndex = 1
	s.Meta.NextActiveID = 1
	s.Meta.NextHeroID = 2
	s.Heroes.Roster = []state.Hero{{
		ID: 1, Name: "Aldric Ashford", Rank: types.RankC, Class: types.ClassWarrior,
		Traits: state.Traits{Greed: 50, Honesty: 50, Courage: 50},
		Status: state.HeroAvailable,
	}}
	s.Heroes.ArrivalsToday = []types.HeroID{1}
	return s
}

func openBoard(id int64, fee types.Copper, difficulty int, salvage types.SalvagePolicy) state.BoardContract {
	return state.BoardContract{
		ID: types.BoardContractID(id), PostedDay: 1, Title: "Clear the Goblin Warren",
		Rank: types.RankF, Fee: fee, Salvage: salvage, BaseDifficulty: difficulty,
		Status: types.BoardStatusOpen,
	}
}

func TestHeroTakesTheLowestIdOpenBoard(t *testing.T) {
	s := pickupState()
	s.Meta.NextContractID = 3
	s.Contracts.Board = []state.BoardContract{
		openBoard(1, 100, 2, types.SalvageSplit),
		openBoard(2, 500, 2, types.SalvageSplit),
	}

	ctx := seqctx.New(1, 1, 1)
	out := RunPickup(s, ctx)

	if len(out.Contracts.Active) != 1 {
		t.Fatalf("expected one active contract, got %d", len(out.Contracts.Active))
	}
	active := out.Contracts.Active[0]
	if active.BoardContractID != 1 {
		t.Fatalf("hero must take the lowest-id OPEN board, took %d", active.BoardContractID)
	}
	if active.DaysRemaining != 2 || active.Status != types.ActiveStatusWIP {
		t.Fatalf("new active must be WIP with 2 days remaining: %+v", active)
	}
	if out.Contracts.Board[0].Status != types.BoardStatusLocked {
		t.Fatalf("taken board must become LOCKED, got %s", out.Contracts.Board[0].Status)
	}
	if out.Contracts.Board[1].Status != types.BoardStatusOpen {
		t.Fatalf("untouched board must stay OPEN, got %s", out.Contracts.Board[1].Status)
	}
	if out.Heroes.Roster[0].Status != state.HeroOnMission {
		t.Fatalf("hero must go ON_MISSION, got %s", out.Heroes.Roster[0].Status)
	}
	if out.Meta.NextActiveID != 2 {
		t.Fatalf("active id counter must advance, got %d", out.Meta.NextActiveID)
	}

	recs := ctx.Events()
	if len(recs) != 1 || recs[0].Type != events.TypeContractTaken {
		t.Fatalf("expected one contract.taken event, got %+v", recs)
	}
}

func TestCowardDeclinesHardContract(t *testing.T) {
	s := pickupState()
	s.Heroes.Roster[0].Rank = types.RankF // comfort = 2
	s.Heroes.Roster[0].Traits.Courage = 0
	s.Contracts.Board = []state.BoardContract{openBoard(1, 0, 6, types.SalvageGuild)}

	ctx := seqctx.New(1, 1, 1)
	out := RunPickup(s, ctx)

	if len(out.Contracts.Active) != 0 {
		t.Fatalf("expected no pickup, got %d actives", len(out.Contracts.Active))
	}
	if out.Contracts.Board[0].Status != types.BoardStatusOpen {
		t.Fatalf("declined board must stay OPEN")
	}
	recs := ctx.Events()
	if len(recs) != 1 || recs[0].Type != events.TypeHeroDeclined {
		t.Fatalf("expected one hero.declined event, got %+v", recs)
	}
	if recs[0].Attributes["reason"] != "too_risky" {
		t.Fatalf("expected too_risky, got %s", recs[0].Attributes["reason"])
	}
}

func TestEmptyBoardEmitsNothing(t *testing.T) {
	s := pickupState()
	ctx := seqctx.New(1, 1, 1)
	out := RunPickup(s, ctx)

	if len(ctx.Events()) != 0 {
		t.Fatalf("no OPEN boards: expected no events, got %d", len(ctx.Events()))
	}
	if out.Heroes.Roster[0].Status != state.HeroAvailable {
		t.Fatalf("hero must stay AVAILABLE with nothing to take")
	}
}

func TestAttractivenessScoreTerms(t *testing.T) {
	hero := state.Hero{Rank: types.RankC, Traits: state.Traits{Greed: 40, Courage: 50}}

	// Within comfort: fee/10 plus the salvage component only.
	b := openBoard(1, 200, 2, types.SalvageHero)
	if got := attractivenessScore(b, hero); got != 20+2*2+40/2 {
		t.Fatalf("HERO salvage score: want %d, got %d", 20+2*2+40/2, got)
	}

	b.Salvage = types.SalvageGuild
	if got := attractivenessScore(b, hero); got != 20-40/5 {
		t.Fatalf("GUILD salvage score: want %d, got %d", 20-40/5, got)
	}

	b.Salvage = types.SalvageSplit
	if got := attractivenessScore(b, hero); got != 20+2+40/4 {
		t.Fatalf("SPLIT salvage score: want %d, got %d", 20+2+40/4, got)
	}

	// Past comfort (rank C comfort is 8): each extra difficulty point costs 15.
	risky := openBoard(1, 0, 10, types.SalvageGuild)
	want := -40/5 - ((10-8)*15 + (50-50)/10)
	if got := attractivenessScore(risky, hero); got != want {
		t.Fatalf("risk penalty score: want %d, got %d", want, got)
	}
}
