package econ

import (
	"testing"

	"guildhall/core/state"
	"guildhall/core/types"
)

func TestEscrowAndReleaseOnCancelRoundTrip(t *testing.T) {
	e := state.Economy{MoneyCopper: 1000}
	e = EscrowOnPost(e, 500, 200)
	if e.MoneyCopper != 1200 || e.ReservedCopper != 500 {
		t.Fatalf("unexpected economy after post: %+v", e)
	}
	e = ReleaseOnCancel(e, 500, 200)
	if e.MoneyCopper != 1000 || e.ReservedCopper != 0 {
		t.Fatalf("unexpected economy after cancel: %+v", e)
	}
}

func TestSettleSuccessPaysFeeAndReleasesReserve(t *testing.T) {
	e := state.Economy{MoneyCopper: 1200, ReservedCopper: 500}
	e = SettleSuccess(e, 500)
	if e.MoneyCopper != 700 {
		t.Fatalf("expected money_copper 700, got %d", e.MoneyCopper)
	}
	if e.ReservedCopper != 0 {
		t.Fatalf("expected reserved_copper 0, got %d", e.ReservedCopper)
	}
}

func TestReleaseOnFailureKeepsDepositMoney(t *testing.T) {
	e := state.Economy{MoneyCopper: 1200, ReservedCopper: 500}
	e = ReleaseOnFailure(e, 500)
	if e.MoneyCopper != 1200 {
		t.Fatalf("expected money_copper unchanged at 1200, got %d", e.MoneyCopper)
	}
	if e.ReservedCopper != 0 {
		t.Fatalf("expected reserved_copper 0, got %d", e.ReservedCopper)
	}
}

func TestAdjustReserveTracksFeeRenegotiation(t *testing.T) {
	e := state.Economy{MoneyCopper: 1000, ReservedCopper: 300}
	e = AdjustReserve(e, 150)
	if e.ReservedCopper != 450 {
		t.Fatalf("expected reserved_copper 450, got %d", e.ReservedCopper)
	}
	e = AdjustReserve(e, -450)
	if e.ReservedCopper != 0 {
		t.Fatalf("expected reserved_copper 0, got %d", e.ReservedCopper)
	}
}

func TestGuildTrophyShareSplitsFloor(t *testing.T) {
	cases := []struct {
		policy   types.SalvagePolicy
		reported int
		want     int
	}{
		{types.SalvageGuild, 5, 5},
		{types.SalvageHero, 5, 0},
		{types.SalvageSplit, 5, 2},
		{types.SalvageSplit, 4, 2},
	}
	for _, c := range cases {
		if got := GuildTrophyShare(c.policy, c.reported); got != c.want {
			t.Fatalf("policy %v reported %d: want %d, got %d", c.policy, c.reported, c.want, got)
		}
	}
}

func TestSellTrophiesCreditsMoneyAndDecrementsStock(t *testing.T) {
	e := state.Economy{TrophiesStock: 10}
	e, proceeds := SellTrophies(e, 4, 200)
	if proceeds != 800 {
		t.Fatalf("expected proceeds 800, got %d", proceeds)
	}
	if e.TrophiesStock != 6 {
		t.Fatalf("expected stock 6, got %d", e.TrophiesStock)
	}
	if e.MoneyCopper != 800 {
		t.Fatalf("expected money_copper 800, got %d", e.MoneyCopper)
	}
}
