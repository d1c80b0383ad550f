package handlers

import (
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/econ"
)

// PricePerTrophyCopper is the flat per-trophy sale price in copper. Like
// pipeline's tunables, it starts at the built-in default and is overwritten
// exactly once, at engine construction, by Configure.
var PricePerTrophyCopper types.Copper = 200

// Configure overwrites PricePerTrophyCopper from a loaded config.Constants
// value. Intended to be called exactly once, at engine construction.
func Configure(pricePerTrophyCopper int64) {
	PricePerTrophyCopper = types.Copper(pricePerTrophyCopper)
}

// SellTrophies converts trophy stock into money. A non-positive amount
// sells the entire stock, per the resolved open question preserving the
// source's "non-positive means sell all" semantics.
func SellTrophies(s state.GameState, cmd command.Command, ctx *seqctx.Context) state.GameState {
	amount := cmd.Amount
	if amount <= 0 {
		amount = s.Economy.TrophiesStock
	}

	var proceeds types.Copper
	s.Economy, proceeds = econ.SellTrophies(s.Economy, amount, PricePerTrophyCopper)

	ctx.EmitEvent(events.TrophiesSold{Amount: amount, ProceedsCopper: int64(proceeds)})
	return s
}
