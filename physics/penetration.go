package physics

import (
	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/vmath"
)

// PointBlank reports whether a wall strike is close enough to the muzzle
// for a certain entry. Point-blank strikes skip the ricochet roll.
func PointBlank(travelDist float64, prof *caliber.Profile) bool {
	return travelDist <= prof.MaxPenetrationDistance*parameter.PenetrationPointBlankFraction
}

// EntryChance returns the probability that a wall strike after the given
// flight distance enters the obstacle instead of stopping. Certain inside
// the point-blank fraction of the reference range, then a quadratic
// falloff to the far-range floor at and beyond full range. The curve
// never increases with distance.
func EntryChance(travelDist float64, prof *caliber.Profile) float64 {
	if !prof.CanPenetrate {
		return 0
	}
	if PointBlank(travelDist, prof) {
		return 1
	}
	u := vmath.Clamp(travelDist/prof.MaxPenetrationDistance, 0, 1)
	return 1 - (1-parameter.PenetrationFarChance)*u*u
}

// TryPenetrate rolls a wall entry for a strike after the given flight
// distance, honoring the per-projectile wall budget
func TryPenetrate(travelDist float64, walls int, prof *caliber.Profile, rng *vmath.FastRand) bool {
	if !prof.PenetrationBudgetLeft(walls) {
		return false
	}
	return rng.Chance(EntryChance(travelDist, prof))
}
