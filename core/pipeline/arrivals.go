package pipeline

import (
	"sort"

	"guildhall/core/events"
	"guildhall/core/rng"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
)

var arrivalClasses = []types.HeroClass{types.ClassWarrior, types.ClassMage, types.ClassHeal}
var arrivalRanks = []types.Rank{types.RankF, types.RankE, types.RankD, types.RankC, types.RankB, types.RankA, types.RankS}

// GenerateArrivals runs Phase 2: creates N_heroes new roster members and
// records their ids in arrivals_today. Draws per hero, in order: name
// (given, surname), class, rank, greed, honesty, courage.
func GenerateArrivals(s state.GameState, r *rng.Source, ctx *seqctx.Context) (state.GameState, error) {
	n := RankMultiplierBase * heroMultiplier(s.Guild.Rank)
	ids := make([]types.HeroID, 0, n)

	for i := 0; i < n; i++ {
		name, err := SampleHeroName(r)
		if err != nil {
			return s, err
		}
		classRoll, err := r.NextInt(int32(len(arrivalClasses)))
		if err != nil {
			return s, err
		}
		rankRoll, err := r.NextInt(int32(len(arrivalRanks)))
		if err != nil {
			return s, err
		}
		greed, err := r.NextInt(101)
		if err != nil {
			return s, err
		}
		honesty, err := r.NextInt(101)
		if err != nil {
			return s, err
		}
		courage, err := r.NextInt(101)
		if err != nil {
			return s, err
		}

		id, meta := s.Meta.IssueHeroID()
		s.Meta = meta

		hero := state.Hero{
			ID:    types.HeroID(id),
			Name:  name,
			Rank:  arrivalRanks[rankRoll],
			Class: arrivalClasses[classRoll],
			Traits: state.Traits{
				Greed:   int(greed),
				Honesty: int(honesty),
				Courage: int(courage),
			},
			Status:           state.HeroAvailable,
			HistoryCompleted: 0,
		}
		s.Heroes.Roster = append(s.Heroes.Roster, hero)
		s.Heroes.ArrivalsToday = append(s.Heroes.ArrivalsToday, hero.ID)
		ids = append(ids, hero.ID)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ctx.EmitEvent(events.HeroesArrived{HeroIDs: ids})
	return s, nil
}
