package events

import "guildhall/core/types"

const (
	TypeGuildRankUp    = "guild.rank_up"
	TypeProofPolicySet = "guild.proof_policy_set"
)

// GuildRankUp is emitted when completed-contract progress crosses the
// threshold for the next rank.
type GuildRankUp struct {
	OldRank types.Rank
	NewRank types.Rank
}

func (GuildRankUp) EventType() string { return TypeGuildRankUp }

func (e GuildRankUp) Attributes() map[string]string {
	return map[string]string{
		"old_rank": e.OldRank.String(),
		"new_rank": e.NewRank.String(),
	}
}

// ProofPolicySet is emitted when SetProofPolicy changes the guild's proof
// policy.
type ProofPolicySet struct {
	Policy types.ProofPolicy
}

func (ProofPolicySet) EventType() string { return TypeProofPolicySet }

func (e ProofPolicySet) Attributes() map[string]string {
	return map[string]string{"policy": e.Policy.String()}
}
