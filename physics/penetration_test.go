package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/vmath"
)

func pierceProfile() *caliber.Profile {
	return &caliber.Profile{
		Name:                      "pierce",
		CanPenetrate:              true,
		MaxWallPenetrations:       2,
		MaxPenetrationDistance:    1000,
		PostPenetrationDamageMult: 0.6,
	}
}

func TestEntryChanceMonotonic(t *testing.T) {
	prof := pierceProfile()
	prev := math.Inf(1)
	for d := 0.0; d <= 1500; d += 5 {
		c := EntryChance(d, prof)
		if c > prev+epsilon {
			t.Fatalf("entry chance rose with distance at %v px: %v > %v", d, c, prev)
		}
		if c < 0 || c > 1 {
			t.Fatalf("entry chance out of range at %v px: %v", d, c)
		}
		prev = c
	}
}

func TestPointBlankCertainEntry(t *testing.T) {
	prof := pierceProfile()
	blank := prof.MaxPenetrationDistance * parameter.PenetrationPointBlankFraction

	if !PointBlank(blank, prof) {
		t.Error("strike at the point-blank boundary not point blank")
	}
	if PointBlank(blank+0.001, prof) {
		t.Error("strike past the boundary still point blank")
	}
	if got := EntryChance(blank, prof); got != 1 {
		t.Errorf("point-blank entry chance = %v, want 1", got)
	}

	for seed := uint64(1); seed <= 100; seed++ {
		rng := vmath.NewFastRand(seed)
		if !TryPenetrate(10, 0, prof, rng) {
			t.Fatalf("seed %d: point-blank entry failed", seed)
		}
	}
}

func TestEntryChanceFarFloor(t *testing.T) {
	prof := pierceProfile()
	if got := EntryChance(prof.MaxPenetrationDistance, prof); math.Abs(got-parameter.PenetrationFarChance) > epsilon {
		t.Errorf("entry chance at full range = %v, want %v", got, parameter.PenetrationFarChance)
	}
	if got := EntryChance(prof.MaxPenetrationDistance*5, prof); math.Abs(got-parameter.PenetrationFarChance) > epsilon {
		t.Errorf("entry chance beyond full range = %v, want %v", got, parameter.PenetrationFarChance)
	}
}

func TestEntryChanceDisabledCaliber(t *testing.T) {
	prof := pierceProfile()
	prof.CanPenetrate = false
	if got := EntryChance(10, prof); got != 0 {
		t.Errorf("entry chance for dull caliber = %v, want 0", got)
	}
	rng := vmath.NewFastRand(1)
	if TryPenetrate(10, 0, prof, rng) {
		t.Error("dull caliber entered a wall")
	}
}

func TestTryPenetrateBudget(t *testing.T) {
	prof := pierceProfile()
	for seed := uint64(1); seed <= 100; seed++ {
		rng := vmath.NewFastRand(seed)
		if TryPenetrate(10, prof.MaxWallPenetrations, prof, rng) {
			t.Fatalf("seed %d: entry allowed at the wall cap", seed)
		}
	}
}
