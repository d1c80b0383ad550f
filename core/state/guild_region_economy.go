package state

import "guildhall/core/types"

// Guild tracks the guild's standing: its rank, its reputation, progress
// toward the next rank, and its current proof policy.
type Guild struct {
	Rank                  types.Rank        `json:"rank"`
	Reputation            int               `json:"reputation"`
	CompletedContractsTot int               `json:"completed_contracts_total"`
	ContractsForNextRank  int               `json:"contracts_for_next_rank"`
	ProofPolicy           types.ProofPolicy `json:"proof_policy"`
}

// Clone returns an independent copy of g.
func (g Guild) Clone() Guild { return g }

// Region tracks the simulated region's stability score.
type Region struct {
	Stability int `json:"stability"`
}

// Clone returns an independent copy of r.
func (r Region) Clone() Region { return r }

// Economy tracks the guild's money, escrowed (reserved) money, and trophy
// stockpile, all in integer Copper/units.
type Economy struct {
	MoneyCopper    types.Copper `json:"money_copper"`
	ReservedCopper types.Copper `json:"reserved_copper"`
	TrophiesStock  int64        `json:"trophies_stock"`
}

// Clone returns an independent copy of e.
func (e Economy) Clone() Economy { return e }

// Available returns the portion of money not earmarked by escrow.
func (e Economy) Available() types.Copper { return e.MoneyCopper - e.ReservedCopper }
