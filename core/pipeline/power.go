package pipeline

import (
	"guildhall/core/state"
	"guildhall/core/types"
)

// heroPower computes a hero's contribution to a resolution roll: rank
// ordinal plus one, plus a class bonus (warrior 2, mage/heal 1), plus
// history_completed/10. A missing hero (already removed from the roster)
// contributes a flat 1.
func heroPower(hero state.Hero, found bool) int {
	if !found {
		return 1
	}
	classBonus := 1
	if hero.Class == types.ClassWarrior {
		classBonus = 2
	}
	return hero.Rank.Ordinal() + 1 + classBonus + hero.HistoryCompleted/10
}

// partyPower sums heroPower over every hero assigned to an active contract,
// looking the ids up in the order heroIDs lists them (the sum does not
// depend on that order).
func partyPower(s state.GameState, heroIDs []types.HeroID) int {
	total := 0
	for _, id := range heroIDs {
		hero, ok := s.Heroes.Find(id)
		total += heroPower(hero, ok)
	}
	if total == 0 {
		return 1
	}
	return total
}
