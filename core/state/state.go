// Package state defines the immutable root aggregate the reducer operates
// on. Handlers and pipeline phases receive a GameState by value and return a
// new GameState by value. A by-value copy still shares its slices' backing
// arrays and handlers assign into their elements, so Engine.Step hands them
// a Clone: the state a caller passes to Step is never modified.
package state

import "guildhall/core/types"

// SaveVersion is the canonical save format version this build understands.
// Loading a save with a different value fails with ErrIncompatibleVersion.
const SaveVersion = 1

// GameState is the root, immutable aggregate. The reducer is its sole
// writer; every other package only ever receives one by value and returns a
// new one.
type GameState struct {
	Meta      Meta      `json:"meta"`
	Guild     Guild     `json:"guild"`
	Region    Region    `json:"region"`
	Economy   Economy   `json:"economy"`
	Contracts Contracts `json:"contracts"`
	Heroes    Heroes    `json:"heroes"`
}

// Clone returns an independent deep copy of s, safe to mutate without
// affecting the original.
func (s GameState) Clone() GameState {
	return GameState{
		Meta:      s.Meta.Clone(),
		Guild:     s.Guild.Clone(),
		Region:    s.Region.Clone(),
		Economy:   s.Economy.Clone(),
		Contracts: s.Contracts.Clone(),
		Heroes:    s.Heroes.Clone(),
	}
}

// New returns the initial GameState for a freshly created guild, seeded with
// the given RNG seed. It starts at day 0 with no contracts, no heroes, 10000
// copper (100 gold) in the treasury with nothing reserved, a rank-F guild,
// and neutral stability/reputation.
func New(seed uint32) GameState {
	return GameState{
		Meta: Meta{
			SaveVersion:    SaveVersion,
			Seed:           seed,
			DayIndex:       0,
			Revision:       0,
			NextContractID: 1,
			NextHeroID:     1,
			NextActiveID:   1,
			TaxDueDay:      7,
			TaxAmountDue:   0,
			TaxPenalty:     0,
		},
		Guild: Guild{
			Rank:                  types.RankF,
			Reputation:            50,
			CompletedContractsTot: 0,
			ContractsForNextRank:  5,
			ProofPolicy:           types.ProofStrict,
		},
		Region: Region{Stability: 50},
		Economy: Economy{
			MoneyCopper:    10000,
			ReservedCopper: 0,
			TrophiesStock:  0,
		},
		Contracts: Contracts{},
		Heroes:    Heroes{},
	}
}
