package state

import "guildhall/core/types"

// HeroStatus is the availability state of a roster member.
type HeroStatus int

const (
	HeroAvailable HeroStatus = iota + 1
	HeroOnMission
)

func (s HeroStatus) String() string {
	switch s {
	case HeroAvailable:
		return "AVAILABLE"
	case HeroOnMission:
		return "ON_MISSION"
	default:
		return "UNKNOWN"
	}
}

// Traits captures a hero's three personality dials, each in 0..100.
type Traits struct {
	Greed   int `json:"greed"`
	Honesty int `json:"honesty"`
	Courage int `json:"courage"`
}

// Hero is a member of the guild's roster.
type Hero struct {
	ID               types.HeroID    `json:"id"`
	Name             string          `json:"name"`
	Rank             types.Rank      `json:"rank"`
	Class            types.HeroClass `json:"class"`
	Traits           Traits          `json:"traits"`
	Status           HeroStatus      `json:"status"`
	HistoryCompleted int             `json:"history_completed"`
}

// Clone returns an independent copy of h.
func (h Hero) Clone() Hero { return h }

// Heroes is the root aggregate of the roster and the current day's arrival
// scratch list.
type Heroes struct {
	Roster []Hero `json:"roster"`
	// ArrivalsToday is scoped to the current day and never persisted: the
	// canonical save format omits it entirely, and loading always
	// reconstitutes it empty.
	ArrivalsToday []types.HeroID `json:"-"`
}

// Clone returns an independent deep copy of h.
func (h Heroes) Clone() Heroes {
	clone := Heroes{}
	if len(h.Roster) > 0 {
		clone.Roster = append([]Hero(nil), h.Roster...)
	}
	if len(h.ArrivalsToday) > 0 {
		clone.ArrivalsToday = append([]types.HeroID(nil), h.ArrivalsToday...)
	}
	return clone
}

// Find returns the hero with the given id, if present in the roster.
func (h Heroes) Find(id types.HeroID) (Hero, bool) {
	for _, hero := range h.Roster {
		if hero.ID == id {
			return hero, true
		}
	}
	return Hero{}, false
}

// Remove returns a copy of Roster with the given hero id removed.
func (h Heroes) Remove(id types.HeroID) []Hero {
	out := make([]Hero, 0, len(h.Roster))
	for _, hero := range h.Roster {
		if hero.ID != id {
			out = append(out, hero)
		}
	}
	return out
}

// RemoveFromArrivals returns a copy of ArrivalsToday with the given hero id
// removed, keeping it a subset of the roster after a DEATH removal.
func (h Heroes) RemoveFromArrivals(id types.HeroID) []types.HeroID {
	out := make([]types.HeroID, 0, len(h.ArrivalsToday))
	for _, a := range h.ArrivalsToday {
		if a != id {
			out = append(out, a)
		}
	}
	return out
}
