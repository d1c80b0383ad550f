package events

import "guildhall/core/types"

const (
	TypeHeroesArrived = "heroes.arrived"
	TypeHeroDeclined  = "hero.declined"
	TypeHeroDied      = "hero.died"
)

// HeroesArrived lists the heroes who joined the roster during Phase 2,
// sorted by id.
type HeroesArrived struct {
	HeroIDs []types.HeroID
}

func (HeroesArrived) EventType() string { return TypeHeroesArrived }

func (e HeroesArrived) Attributes() map[string]string {
	return map[string]string{"hero_ids": idList(e.HeroIDs)}
}

// HeroDeclined is emitted during Phase 4 pickup when a hero's attractiveness
// score for the lowest-id OPEN board contract is negative.
type HeroDeclined struct {
	HeroID  types.HeroID
	BoardID types.BoardContractID
	Reason  string
}

func (HeroDeclined) EventType() string { return TypeHeroDeclined }

func (e HeroDeclined) Attributes() map[string]string {
	return map[string]string{
		"hero_id":  itoa(int64(e.HeroID)),
		"board_id": itoa(int64(e.BoardID)),
		"reason":   e.Reason,
	}
}

// HeroDied is emitted when a resolution's outcome is DEATH, removing the
// hero from the roster.
type HeroDied struct {
	HeroID types.HeroID
}

func (HeroDied) EventType() string { return TypeHeroDied }

func (e HeroDied) Attributes() map[string]string {
	return map[string]string{"hero_id": itoa(int64(e.HeroID))}
}
