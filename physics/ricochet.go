package physics

import (
	"math"

	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/vmath"
)

// RicochetOutcome describes a successful surface reflection
type RicochetOutcome struct {
	VelX, VelY float64 // reflected velocity with retention applied
	DamageMult float64 // factor to fold into the projectile damage multiplier
	AngleDeg   float64 // grazing angle of the impact in degrees
}

// ImpactAngle returns the grazing angle in radians between a travel
// direction and a surface with the given normal. 0 is a parallel graze,
// Pi/2 a perpendicular strike. Inputs need not be unit length.
func ImpactAngle(dirX, dirY, normalX, normalY float64) float64 {
	dx, dy := vmath.Normalize2D(dirX, dirY)
	nx, ny := vmath.Normalize2D(normalX, normalY)
	return math.Asin(vmath.Clamp(math.Abs(dx*nx+dy*ny), 0, 1))
}

// RicochetProbability returns the reflection chance for an impact at the
// given grazing angle. The chance falls linearly from the base probability
// at a parallel graze to half of it at the profile's maximum angle, and is
// zero beyond the maximum.
func RicochetProbability(angleRad float64, prof *caliber.Profile) float64 {
	maxAngle := prof.MaxRicochetAngleDeg * vmath.DegToRad
	if maxAngle <= 0 || angleRad > maxAngle {
		return 0
	}
	t := angleRad / maxAngle
	return prof.BaseRicochetProbability * (1 - (1-parameter.RicochetFloorProbabilityFactor)*t)
}

// TryRicochet rolls a reflection for a surface impact. On success the
// outcome carries the deviated reflected velocity. Failure means the
// impact resolves through penetration or termination instead. Degenerate
// velocity or normal never reflects.
func TryRicochet(velX, velY, normalX, normalY float64, bounces int, prof *caliber.Profile, rng *vmath.FastRand) (RicochetOutcome, bool) {
	if !prof.RicochetBudgetLeft(bounces) {
		return RicochetOutcome{}, false
	}
	dx, dy := vmath.Normalize2D(velX, velY)
	nx, ny := vmath.Normalize2D(normalX, normalY)
	if (dx == 0 && dy == 0) || (nx == 0 && ny == 0) {
		return RicochetOutcome{}, false
	}

	angle := math.Asin(vmath.Clamp(math.Abs(dx*nx+dy*ny), 0, 1))
	if !rng.Chance(RicochetProbability(angle, prof)) {
		return RicochetOutcome{}, false
	}

	rx, ry := vmath.Reflect(dx, dy, nx, ny)
	if dev := prof.RicochetDeviationDeg * vmath.DegToRad; dev > 0 {
		rx, ry = vmath.RotateVector(rx, ry, rng.Range(-dev, dev))
	}
	speed := vmath.Magnitude(velX, velY) * prof.VelocityRetention
	return RicochetOutcome{
		VelX:       rx * speed,
		VelY:       ry * speed,
		DamageMult: prof.RicochetDamageMult,
		AngleDeg:   angle * vmath.RadToDeg,
	}, true
}

// RicochetTravelLimit returns the remaining flight distance granted to a
// travel-constrained caliber after reflecting at the given angle, with
// shallower grazes keeping more range. The second return is false for
// unconstrained calibers.
func RicochetTravelLimit(angleDeg float64, prof *caliber.Profile) (float64, bool) {
	if !prof.ConstrainRicochetTravel || prof.MaxRicochetAngleDeg <= 0 {
		return 0, false
	}
	t := vmath.Clamp(angleDeg/prof.MaxRicochetAngleDeg, 0, 1)
	return parameter.RicochetTravelReference * (1 - t), true
}
