// Package econ implements the escrow/settlement bookkeeping for contract
// economics, as small pure functions over state.Economy. Every function
// returns a new Economy; none mutate their argument. A contract's
// obligation is never represented as a live reference, only as a
// reconstructible copper amount.
//
// The ledger model: posting a contract earmarks the full committed fee in
// reserved (the guild's outstanding payout obligation) and credits any
// client prepayment into money. Settlement on SUCCESS/PARTIAL pays the fee
// out of money and releases the matching reserve; FAIL/DEATH releases the
// reserve without paying, leaving the guild holding the client's deposit.
package econ

import (
	"guildhall/core/state"
	"guildhall/core/types"
)

// EscrowOnPost records a contract going up on the board: the client's
// prepayment (if any) enters the guild's coffers, and the committed fee is
// earmarked in reserved. Runs on PostContract.
func EscrowOnPost(e state.Economy, fee, deposit types.Copper) state.Economy {
	e.MoneyCopper += deposit
	e.ReservedCopper += fee
	return e
}

// ReleaseOnCancel is the inverse of EscrowOnPost, run when a board contract
// is cancelled before pickup: the client's deposit is refunded and the fee
// reserve is released.
func ReleaseOnCancel(e state.Economy, fee, deposit types.Copper) state.Economy {
	e.MoneyCopper -= deposit
	e.ReservedCopper -= fee
	return e
}

// AdjustReserve moves the fee reserve by delta when a posted contract's fee
// is renegotiated. A raise beyond available funds is not clamped here; the
// invariant verifier surfaces it.
func AdjustReserve(e state.Economy, delta types.Copper) state.Economy {
	e.ReservedCopper += delta
	return e
}

// SettleSuccess pays fee out to the hero on a SUCCESS or PARTIAL resolution
// (auto- or manual-close). The full fee leaves the system and the matching
// reserve is released.
func SettleSuccess(e state.Economy, fee types.Copper) state.Economy {
	e.MoneyCopper -= fee
	e.ReservedCopper -= fee
	return e
}

// ReleaseOnFailure releases the fee reserve for a FAIL or DEATH resolution
// without paying anything out: the guild keeps the client's deposit, and
// the obligation is cleared.
func ReleaseOnFailure(e state.Economy, fee types.Copper) state.Economy {
	e.ReservedCopper -= fee
	return e
}

// AddTrophies adds reported trophies recovered under GUILD or SPLIT salvage
// to stock.
func AddTrophies(e state.Economy, count int64) state.Economy {
	e.TrophiesStock += count
	return e
}

// SellTrophies converts amount trophies into copper at pricePerTrophy,
// decrementing stock and crediting money. Caller has already resolved
// amount<=0 into "sell all".
func SellTrophies(e state.Economy, amount int64, pricePerTrophy types.Copper) (state.Economy, types.Copper) {
	proceeds := types.Copper(amount) * pricePerTrophy
	e.TrophiesStock -= amount
	e.MoneyCopper += proceeds
	return e, proceeds
}

// GuildTrophyShare returns how many of the reported trophies the guild
// takes into stock under policy: all of them under GUILD, none under HERO,
// floor(reported/2) under SPLIT.
func GuildTrophyShare(policy types.SalvagePolicy, reported int) int {
	switch policy {
	case types.SalvageGuild:
		return reported
	case types.SalvageSplit:
		return reported / 2
	default: // SalvageHero
		return 0
	}
}

// PayTax clears amount from the amount owed and debits money.
func PayTax(e state.Economy, amount types.Copper) state.Economy {
	e.MoneyCopper -= amount
	return e
}
