package pipeline

import (
	"testing"

	"guildhall/core/rng"
	"guildhall/core/types"
)

func TestHeroSalvageNeverTriggersTheftAndCostsNoDraw(t *testing.T) {
	r := rng.New(4)
	before := r.Draws()
	reported, suspected, err := rollTheft(r, types.SalvageHero, 100, 3)
	if err != nil {
		t.Fatalf("rollTheft: %v", err)
	}
	if suspected || reported != 3 {
		t.Fatalf("HERO salvage must not trigger theft: reported=%d suspected=%v", reported, suspected)
	}
	if r.Draws() != before {
		t.Fatalf("zero-chance theft must not consume a draw")
	}
}

func TestZeroExpectedTrophiesSkipsTheftRoll(t *testing.T) {
	r := rng.New(4)
	before := r.Draws()
	reported, suspected, err := rollTheft(r, types.SalvageGuild, 100, 0)
	if err != nil {
		t.Fatalf("rollTheft: %v", err)
	}
	if suspected || reported != 0 {
		t.Fatalf("nothing to steal: reported=%d suspected=%v", reported, suspected)
	}
	if r.Draws() != before {
		t.Fatalf("theft with no trophies must not consume a draw")
	}
}

func TestZeroGreedNeverSteals(t *testing.T) {
	r := rng.New(4)
	reported, suspected, err := rollTheft(r, types.SalvageGuild, 0, 3)
	if err != nil {
		t.Fatalf("rollTheft: %v", err)
	}
	if suspected || reported != 3 {
		t.Fatalf("greed 0 must never steal: reported=%d suspected=%v", reported, suspected)
	}
}

func TestTheftHalvesReportedCount(t *testing.T) {
	r := rng.New(21)
	sawTheft, sawHonest := false, false
	for i := 0; i < 2000; i++ {
		reported, suspected, err := rollTheft(r, types.SalvageGuild, 100, 5)
		if err != nil {
			t.Fatalf("rollTheft: %v", err)
		}
		if suspected {
			sawTheft = true
			if reported != 2 {
				t.Fatalf("theft must halve (floor) the report: expected 2, got %d", reported)
			}
		} else {
			sawHonest = true
			if reported != 5 {
				t.Fatalf("honest return must report the full count: got %d", reported)
			}
		}
	}
	if !sawTheft || !sawHonest {
		t.Fatalf("greed 100 under GUILD salvage should produce both outcomes over 2000 trials (theft=%v honest=%v)", sawTheft, sawHonest)
	}
}

func TestTheftChanceScalesByPolicy(t *testing.T) {
	if got := theftChancePercent(types.SalvageGuild, 80); got != 40 {
		t.Fatalf("GUILD salvage, greed 80: want 40%%, got %d%%", got)
	}
	if got := theftChancePercent(types.SalvageSplit, 80); got != 20 {
		t.Fatalf("SPLIT salvage, greed 80: want 20%%, got %d%%", got)
	}
	if got := theftChancePercent(types.SalvageHero, 80); got != 0 {
		t.Fatalf("HERO salvage: want 0%%, got %d%%", got)
	}
}
