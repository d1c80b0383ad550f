package pipeline

import (
	"guildhall/core/state"
	"guildhall/core/types"
)

// attractivenessScore is the pickup formula:
// fee/10 + salvage_component − risk_penalty. salvage_component rewards HERO
// salvage most, SPLIT moderately, and treats GUILD salvage as a small
// deterrent scaled by the hero's greed. risk_penalty only applies once the
// contract's difficulty exceeds the hero's comfort zone, (rank_level+1)×2.
func attractivenessScore(board state.BoardContract, hero state.Hero) int {
	score := int(board.Fee) / 10

	switch board.Salvage {
	case types.SalvageGuild:
		score -= hero.Traits.Greed / 5
	case types.SalvageHero:
		score += board.BaseDifficulty*2 + hero.Traits.Greed/2
	case types.SalvageSplit:
		score += board.BaseDifficulty + hero.Traits.Greed/4
	}

	comfort := (hero.Rank.Ordinal() + 1) * 2
	if board.BaseDifficulty > comfort {
		score -= (board.BaseDifficulty-comfort)*15 + (50-hero.Traits.Courage)/10
	}

	return score
}

// declineReason classifies a negative attractiveness score into a stable
// reason tag for HeroDeclined, based on which term dominated the rejection.
func declineReason(board state.BoardContract, hero state.Hero) string {
	comfort := (hero.Rank.Ordinal() + 1) * 2
	if board.BaseDifficulty > comfort {
		return "too_risky"
	}
	if board.Salvage == types.SalvageGuild {
		return "bad_terms"
	}
	return "low_profit"
}
