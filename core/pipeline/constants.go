// Package pipeline implements the nine-phase AdvanceDay state machine.
// Phase order and ascending-id iteration within a phase are part of the
// replay hash; nothing in this package may range over a Go map when the
// iteration order could affect output.
package pipeline

import (
	"fmt"

	"guildhall/core/types"
)

// Rank-scaled counts and thresholds. These start out holding the built-in
// defaults (identical to config.Default()) and are the only mutable package
// state in pipeline: Configure overwrites them once, at engine construction,
// from a loaded config.Constants. No pipeline function ever reads a
// config.Constants directly, so a config file change only ever takes effect
// through the same single seam the reducer itself uses.
var (
	RankMultiplierBase = 2

	ClientPaysChancePercent = 50
	ClientPaysFractionBP    = types.BasisPoints(5000)

	StabilityPenaltyBadAutoResolve = 2
	AutoResolveIntervalDays        = uint64(7)

	SuccessChanceMin   = 5
	SuccessChanceMax   = 85
	PartialChanceFixed = 14
	FailChanceMin      = 1

	MissingChancePercent = 10

	PayoutATailChancePercent = 10

	TaxPenaltyPercent = 10
	TaxMaxMissed      = 3
	TaxIntervalDays   = uint64(7)
	TaxBaseAmountGold = int64(5)
)

func init() {
	if err := checkChanceInvariant(); err != nil {
		panic(err)
	}
}

func checkChanceInvariant() error {
	if SuccessChanceMax+PartialChanceFixed > 100-FailChanceMin {
		return fmt.Errorf("pipeline: inconsistent balance constants: success_max(%d)+partial_fixed(%d) leaves less than fail_min(%d) percent",
			SuccessChanceMax, PartialChanceFixed, FailChanceMin)
	}
	return nil
}

// Constants is the subset of config.Constants that Configure consumes. It is
// defined locally (instead of importing package config) so that pipeline,
// the innermost domain package, never depends on the outer ambient config
// layer — config depends on nothing, and the adapter that loads it is
// responsible for handing values down into pipeline, never the reverse.
type Constants struct {
	RankMultiplierBase int

	ClientPaysChancePercent int
	ClientPaysFractionBP    int64

	StabilityPenaltyBadAutoResolve int
	AutoResolveIntervalDays        int

	SuccessChanceMin   int
	SuccessChanceMax   int
	PartialChanceFixed int
	FailChanceMin      int

	MissingChancePercent int

	PayoutATailChancePercent int

	TaxPenaltyPercent int
	TaxMaxMissed      int
	TaxIntervalDays   int
	TaxBaseAmountGold int64
}

// Configure overwrites the package's tunable constants from c, validating
// the chance invariant before committing any of them. Intended to be called
// exactly once, at engine construction, by the adapter that loaded a
// config.Constants — never mid-run.
func Configure(c Constants) error {
	if c.SuccessChanceMax+c.PartialChanceFixed > 100-c.FailChanceMin {
		return fmt.Errorf("pipeline: inconsistent balance constants: success_max(%d)+partial_fixed(%d) leaves less than fail_min(%d) percent",
			c.SuccessChanceMax, c.PartialChanceFixed, c.FailChanceMin)
	}

	RankMultiplierBase = c.RankMultiplierBase
	ClientPaysChancePercent = c.ClientPaysChancePercent
	ClientPaysFractionBP = types.BasisPoints(c.ClientPaysFractionBP)
	StabilityPenaltyBadAutoResolve = c.StabilityPenaltyBadAutoResolve
	AutoResolveIntervalDays = uint64(c.AutoResolveIntervalDays)
	SuccessChanceMin = c.SuccessChanceMin
	SuccessChanceMax = c.SuccessChanceMax
	PartialChanceFixed = c.PartialChanceFixed
	FailChanceMin = c.FailChanceMin
	MissingChancePercent = c.MissingChancePercent
	PayoutATailChancePercent = c.PayoutATailChancePercent
	TaxPenaltyPercent = c.TaxPenaltyPercent
	TaxMaxMissed = c.TaxMaxMissed
	TaxIntervalDays = uint64(c.TaxIntervalDays)
	TaxBaseAmountGold = c.TaxBaseAmountGold
	return nil
}

// inboxMultiplier scales the per-day inbox generation count by rank: 1 at
// rank F, increasing one step per rank.
func inboxMultiplier(r types.Rank) int {
	return r.Ordinal() + 1
}

// heroMultiplier scales the per-day hero arrival count by rank, using the
// same step-per-rank progression as the inbox.
func heroMultiplier(r types.Rank) int {
	return r.Ordinal() + 1
}

// taxRankMultiplier is the per-rank tax multiplier: F=1x .. S=24x.
func taxRankMultiplier(r types.Rank) int64 {
	switch r {
	case types.RankF:
		return 1
	case types.RankE:
		return 2
	case types.RankD:
		return 4
	case types.RankC:
		return 8
	case types.RankB:
		return 12
	case types.RankA:
		return 16
	case types.RankS:
		return 24
	default:
		return 1
	}
}
