package physics

import (
	"math"

	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/vmath"
)

// HomingCandidate is one prospective target offered to selection
type HomingCandidate struct {
	Entity core.Entity
	X, Y   float64
}

// FindBestTarget picks the candidate cheapest to steer into from a firing
// position and aim direction, scoring each as its perpendicular distance
// from the aim line plus a tenth of its range. Candidates outside the aim
// cone, outside the perpendicular corridor, or on top of the muzzle are
// skipped. los, when non-nil, must report whether a position is visible;
// nil accepts everything. Ties keep the earliest candidate, so a stable
// input order gives a deterministic pick.
func FindBestTarget(cands []HomingCandidate, originX, originY, aimX, aimY, maxAngleDeg, maxPerpDist float64, los func(x, y float64) bool) (core.Entity, bool) {
	ax, ay := vmath.Normalize2D(aimX, aimY)
	if ax == 0 && ay == 0 {
		return core.InvalidEntity, false
	}
	maxAngle := maxAngleDeg * vmath.DegToRad

	best := core.InvalidEntity
	bestScore := math.MaxFloat64
	for _, c := range cands {
		tx := c.X - originX
		ty := c.Y - originY
		dist := vmath.Magnitude(tx, ty)
		if dist <= parameter.HomingMinTargetDistance {
			continue
		}
		if vmath.AngleBetween(ax, ay, tx, ty) > maxAngle {
			continue
		}
		perp := math.Abs(vmath.Cross2D(tx, ty, ax, ay))
		if perp > maxPerpDist {
			continue
		}
		if los != nil && !los(c.X, c.Y) {
			continue
		}
		score := perp + dist*parameter.HomingDistanceWeight
		if score < bestScore {
			bestScore = score
			best = c.Entity
		}
	}
	return best, best != core.InvalidEntity
}

// Steer rotates the kinetic velocity toward a target position, limited by
// the turn rate for this step and by the total turn allowed away from the
// original firing direction. A steer that would exceed the total budget is
// skipped whole rather than clamped, so the projectile flies straight once
// it cannot legally face its target. Reports whether the velocity changed.
func Steer(k *core.Kinetic, targetX, targetY, originDirX, originDirY, rateDegPerSec, maxTurnDeg, dt float64) bool {
	dirX, dirY := k.Heading()
	if dirX == 0 && dirY == 0 {
		return false
	}
	tx := targetX - k.X
	ty := targetY - k.Y
	if vmath.MagnitudeSq(tx, ty) <= parameter.HomingMinTargetDistance*parameter.HomingMinTargetDistance {
		return false
	}

	maxStep := rateDegPerSec * vmath.DegToRad * dt
	turn := vmath.Clamp(vmath.SignedAngle(dirX, dirY, tx, ty), -maxStep, maxStep)
	if turn == 0 {
		return false
	}

	newX, newY := vmath.RotateVector(dirX, dirY, turn)
	if vmath.AngleBetween(originDirX, originDirY, newX, newY) > maxTurnDeg*vmath.DegToRad {
		return false
	}

	speed := k.Speed()
	k.VelX = newX * speed
	k.VelY = newY * speed
	return true
}
