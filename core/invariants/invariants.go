// Package invariants implements the pure, RNG-free verifier that runs after
// every transition. It never mutates state; it only reports.
package invariants

import (
	"fmt"
	"sort"

	"guildhall/core/state"
	"guildhall/core/types"
)

// Violation identifies one failed check, from the closed enumeration below,
// plus a deterministic human-readable detail string built from observed
// values only.
type Violation struct {
	ID      string
	Details string
}

// Closed enumeration of invariant identifiers. Grouped by the sub-aggregate
// they primarily implicate.
const (
	IDS__CONTRACT_COUNTER_NOT_MONOTONIC = "IDS__CONTRACT_COUNTER_NOT_MONOTONIC"
	IDS__HERO_COUNTER_NOT_MONOTONIC     = "IDS__HERO_COUNTER_NOT_MONOTONIC"
	IDS__ACTIVE_COUNTER_NOT_MONOTONIC   = "IDS__ACTIVE_COUNTER_NOT_MONOTONIC"

	CONTRACTS__LOCKED_BOARD_HAS_NON_CLOSED_ACTIVE = "CONTRACTS__LOCKED_BOARD_HAS_NON_CLOSED_ACTIVE"
	CONTRACTS__RETURN_READY_MISSING_PACKET        = "CONTRACTS__RETURN_READY_MISSING_PACKET"
	CONTRACTS__PACKET_MISSING_ACTIVE              = "CONTRACTS__PACKET_MISSING_ACTIVE"
	CONTRACTS__WIP_DAYS_REMAINING_OUT_OF_RANGE    = "CONTRACTS__WIP_DAYS_REMAINING_OUT_OF_RANGE"
	CONTRACTS__DAYS_REMAINING_NEGATIVE            = "CONTRACTS__DAYS_REMAINING_NEGATIVE"
	CONTRACTS__DEPOSIT_EXCEEDS_FEE                = "CONTRACTS__DEPOSIT_EXCEEDS_FEE"

	HEROES__ON_MISSION_NOT_IN_FLIGHT  = "HEROES__ON_MISSION_NOT_IN_FLIGHT"
	HEROES__WIP_HERO_NOT_ON_MISSION   = "HEROES__WIP_HERO_NOT_ON_MISSION"
	HEROES__ON_MISSION_MULTIPLE_UNITS = "HEROES__ON_MISSION_MULTIPLE_UNITS"

	ECONOMY__NEGATIVE_MONEY         = "ECONOMY__NEGATIVE_MONEY"
	ECONOMY__NEGATIVE_RESERVED      = "ECONOMY__NEGATIVE_RESERVED"
	ECONOMY__NEGATIVE_TROPHIES      = "ECONOMY__NEGATIVE_TROPHIES"
	ECONOMY__RESERVED_EXCEEDS_MONEY = "ECONOMY__RESERVED_EXCEEDS_MONEY"

	REGION__STABILITY_OUT_OF_RANGE = "REGION__STABILITY_OUT_OF_RANGE"

	GUILD__REPUTATION_OUT_OF_RANGE = "GUILD__REPUTATION_OUT_OF_RANGE"
)

// Verify returns the deterministically ordered list of violations found in
// s. An empty, non-nil slice means the state is consistent.
func Verify(s state.GameState) []Violation {
	violations := make([]Violation, 0)

	violations = append(violations, checkIDCounters(s)...)
	violations = append(violations, checkContracts(s)...)
	violations = append(violations, checkHeroes(s)...)
	violations = append(violations, checkEconomy(s)...)
	violations = append(violations, checkRegion(s)...)
	violations = append(violations, checkGuild(s)...)

	return violations
}

func checkIDCounters(s state.GameState) []Violation {
	var out []Violation
	maxContract := int64(0)
	for _, d := range s.Contracts.Inbox {
		if int64(d.ID) > maxContract {
			maxContract = int64(d.ID)
		}
	}
	for _, b := range s.Contracts.Board {
		if int64(b.ID) > maxContract {
			maxContract = int64(b.ID)
		}
	}
	if s.Meta.NextContractID <= maxContract {
		out = append(out, Violation{
			ID:      IDS__CONTRACT_COUNTER_NOT_MONOTONIC,
			Details: fmt.Sprintf("next_contract_id=%d max_issued=%d", s.Meta.NextContractID, maxContract),
		})
	}

	maxHero := int64(0)
	for _, h := range s.Heroes.Roster {
		if int64(h.ID) > maxHero {
			maxHero = int64(h.ID)
		}
	}
	if s.Meta.NextHeroID <= maxHero {
		out = append(out, Violation{
			ID:      IDS__HERO_COUNTER_NOT_MONOTONIC,
			Details: fmt.Sprintf("next_hero_id=%d max_issued=%d", s.Meta.NextHeroID, maxHero),
		})
	}

	maxActive := int64(0)
	for _, a := range s.Contracts.Active {
		if int64(a.ID) > maxActive {
			maxActive = int64(a.ID)
		}
	}
	if s.Meta.NextActiveID <= maxActive {
		out = append(out, Violation{
			ID:      IDS__ACTIVE_COUNTER_NOT_MONOTONIC,
			Details: fmt.Sprintf("next_active_id=%d max_issued=%d", s.Meta.NextActiveID, maxActive),
		})
	}
	return out
}

func checkContracts(s state.GameState) []Violation {
	var out []Violation

	// Exactly-one-in-flight reading: every LOCKED board contract must have
	// exactly one non-CLOSED active child.
	for _, b := range sortedBoard(s.Contracts.Board) {
		if b.Status != types.BoardStatusLocked {
			continue
		}
		inFlight := 0
		for _, a := range s.Contracts.Active {
			if a.BoardContractID == b.ID && a.Status != types.ActiveStatusClosed {
				inFlight++
			}
		}
		if inFlight != 1 {
			out = append(out, Violation{
				ID:      CONTRACTS__LOCKED_BOARD_HAS_NON_CLOSED_ACTIVE,
				Details: fmt.Sprintf("board_id=%d in_flight_children=%d", b.ID, inFlight),
			})
		}
		if b.ClientDeposit > b.Fee {
			out = append(out, Violation{
				ID:      CONTRACTS__DEPOSIT_EXCEEDS_FEE,
				Details: fmt.Sprintf("board_id=%d deposit=%d fee=%d", b.ID, b.ClientDeposit, b.Fee),
			})
		}
	}
	for _, b := range sortedBoard(s.Contracts.Board) {
		if b.Status == types.BoardStatusLocked {
			continue
		}
		if b.ClientDeposit > b.Fee {
			out = append(out, Violation{
				ID:      CONTRACTS__DEPOSIT_EXCEEDS_FEE,
				Details: fmt.Sprintf("board_id=%d deposit=%d fee=%d", b.ID, b.ClientDeposit, b.Fee),
			})
		}
	}

	for _, a := range sortedActive(s.Contracts.Active) {
		if a.DaysRemaining < 0 {
			out = append(out, Violation{
				ID:      CONTRACTS__DAYS_REMAINING_NEGATIVE,
				Details: fmt.Sprintf("active_id=%d days_remaining=%d", a.ID, a.DaysRemaining),
			})
		}
		if a.Status == types.ActiveStatusWIP && (a.DaysRemaining != 1 && a.DaysRemaining != 2) {
			out = append(out, Violation{
				ID:      CONTRACTS__WIP_DAYS_REMAINING_OUT_OF_RANGE,
				Details: fmt.Sprintf("active_id=%d days_remaining=%d", a.ID, a.DaysRemaining),
			})
		}
		if a.Status == types.ActiveStatusReturnReady {
			if _, ok := s.Contracts.FindReturnByActive(a.ID); !ok {
				out = append(out, Violation{
					ID:      CONTRACTS__RETURN_READY_MISSING_PACKET,
					Details: fmt.Sprintf("active_id=%d", a.ID),
				})
			}
		}
	}

	for _, r := range sortedReturns(s.Contracts.Returns) {
		if _, ok := s.Contracts.FindActive(r.ActiveContractID); !ok {
			out = append(out, Violation{
				ID:      CONTRACTS__PACKET_MISSING_ACTIVE,
				Details: fmt.Sprintf("active_id=%d", r.ActiveContractID),
			})
		}
	}

	return out
}

func checkHeroes(s state.GameState) []Violation {
	var out []Violation

	// An in-flight unit is keyed by active-contract id: a RETURN_READY
	// active and its pending packet are the same unit, not two.
	inFlightUnits := make(map[types.HeroID]map[types.ActiveContractID]struct{})
	addUnit := func(hid types.HeroID, unit types.ActiveContractID) {
		if inFlightUnits[hid] == nil {
			inFlightUnits[hid] = make(map[types.ActiveContractID]struct{})
		}
		inFlightUnits[hid][unit] = struct{}{}
	}
	for _, a := range s.Contracts.Active {
		if a.Status == types.ActiveStatusClosed {
			continue
		}
		for _, hid := range a.HeroIDs {
			addUnit(hid, a.ID)
		}
	}
	for _, r := range s.Contracts.Returns {
		if !r.RequiresPlayerClose {
			continue
		}
		for _, hid := range r.HeroIDs {
			addUnit(hid, r.ActiveContractID)
		}
	}

	for _, h := range sortedHeroes(s.Heroes.Roster) {
		if h.Status == state.HeroOnMission {
			count := len(inFlightUnits[h.ID])
			if count == 0 {
				out = append(out, Violation{
					ID:      HEROES__ON_MISSION_NOT_IN_FLIGHT,
					Details: fmt.Sprintf("hero_id=%d", h.ID),
				})
			} else if count > 1 {
				out = append(out, Violation{
					ID:      HEROES__ON_MISSION_MULTIPLE_UNITS,
					Details: fmt.Sprintf("hero_id=%d units=%d", h.ID, count),
				})
			}
		}
	}

	heroStatus := make(map[types.HeroID]state.HeroStatus)
	for _, h := range s.Heroes.Roster {
		heroStatus[h.ID] = h.Status
	}
	for _, a := range sortedActive(s.Contracts.Active) {
		if a.Status != types.ActiveStatusWIP {
			continue
		}
		for _, hid := range a.HeroIDs {
			if st, ok := heroStatus[hid]; !ok || st != state.HeroOnMission {
				out = append(out, Violation{
					ID:      HEROES__WIP_HERO_NOT_ON_MISSION,
					Details: fmt.Sprintf("active_id=%d hero_id=%d", a.ID, hid),
				})
			}
		}
	}

	return out
}

func checkEconomy(s state.GameState) []Violation {
	var out []Violation
	if s.Economy.MoneyCopper < 0 {
		out = append(out, Violation{ID: ECONOMY__NEGATIVE_MONEY, Details: fmt.Sprintf("money_copper=%d", s.Economy.MoneyCopper)})
	}
	if s.Economy.ReservedCopper < 0 {
		out = append(out, Violation{ID: ECONOMY__NEGATIVE_RESERVED, Details: fmt.Sprintf("reserved_copper=%d", s.Economy.ReservedCopper)})
	}
	if s.Economy.TrophiesStock < 0 {
		out = append(out, Violation{ID: ECONOMY__NEGATIVE_TROPHIES, Details: fmt.Sprintf("trophies_stock=%d", s.Economy.TrophiesStock)})
	}
	if s.Economy.MoneyCopper-s.Economy.ReservedCopper < 0 {
		out = append(out, Violation{
			ID:      ECONOMY__RESERVED_EXCEEDS_MONEY,
			Details: fmt.Sprintf("money_copper=%d reserved_copper=%d", s.Economy.MoneyCopper, s.Economy.ReservedCopper),
		})
	}
	return out
}

func checkRegion(s state.GameState) []Violation {
	var out []Violation
	if s.Region.Stability < 0 || s.Region.Stability > 100 {
		out = append(out, Violation{ID: REGION__STABILITY_OUT_OF_RANGE, Details: fmt.Sprintf("stability=%d", s.Region.Stability)})
	}
	return out
}

func checkGuild(s state.GameState) []Violation {
	var out []Violation
	if s.Guild.Reputation < 0 || s.Guild.Reputation > 100 {
		out = append(out, Violation{ID: GUILD__REPUTATION_OUT_OF_RANGE, Details: fmt.Sprintf("reputation=%d", s.Guild.Reputation)})
	}
	return out
}

func sortedBoard(in []state.BoardContract) []state.BoardContract {
	out := append([]state.BoardContract(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedActive(in []state.ActiveContract) []state.ActiveContract {
	out := append([]state.ActiveContract(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedReturns(in []state.ReturnPacket) []state.ReturnPacket {
	out := append([]state.ReturnPacket(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].ActiveContractID < out[j].ActiveContractID })
	return out
}

func sortedHeroes(in []state.Hero) []state.Hero {
	out := append([]state.Hero(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
