package pipeline

import (
	"guildhall/core/rng"
	"guildhall/core/types"
)

// payoutBand is a half-open copper range [Lo, Hi).
type payoutBand struct {
	Lo, Hi int64
}

// goldToCopperBand converts a half-open gold range into its copper
// equivalent at 1 gold = 100 copper.
func goldToCopperBand(loGold, hiGold int64) payoutBand {
	return payoutBand{Lo: loGold * 100, Hi: hiGold * 100}
}

var rankPayoutBand = map[types.Rank]payoutBand{
	types.RankF: goldToCopperBand(0, 1),
	types.RankE: goldToCopperBand(1, 6),
	types.RankD: goldToCopperBand(6, 25),
	types.RankC: goldToCopperBand(25, 150),
	types.RankB: goldToCopperBand(150, 700),
	types.RankA: goldToCopperBand(700, 2500),
	types.RankS: goldToCopperBand(2000, 10000),
}

var rankPayoutTailBand = goldToCopperBand(2500, 8000)

// SamplePayoutCopper draws a suggested contract payout in copper for rank,
// sampling uniformly within the rank's band. Rank A has a
// PayoutATailChancePercent chance of sampling from the heavy-tail extension
// instead.
func SamplePayoutCopper(r *rng.Source, rank types.Rank) (int64, error) {
	band, ok := rankPayoutBand[rank]
	if !ok {
		band = rankPayoutBand[types.RankF]
	}
	if rank == types.RankA {
		roll, err := r.NextInt(100)
		if err != nil {
			return 0, err
		}
		if int(roll) < PayoutATailChancePercent {
			band = rankPayoutTailBand
		}
	}
	span := band.Hi - band.Lo
	if span <= 0 {
		return band.Lo, nil
	}
	offset, err := r.NextLong(span)
	if err != nil {
		return 0, err
	}
	return band.Lo + offset, nil
}
