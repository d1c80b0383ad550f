package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
)

// SetProofPolicy changes the guild's proof policy.
func SetProofPolicy(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	s.Guild.ProofPolicy = cmd.ProofPolicy
	ctx.EmitEvent(events.ProofPolicySet{Policy: cmd.ProofPolicy})
	return s
}
