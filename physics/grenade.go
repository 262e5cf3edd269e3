package physics

import (
	"math"

	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/vmath"
)

// GrenadeProfile is the ground physics configuration for thrown grenades
type GrenadeProfile struct {
	Friction        float64 // base ground deceleration, px/s^2
	MinFrictionMult float64 // friction multiplier at and above the ramp velocity
	RampVelocity    float64 // speed below which friction ramps back toward full
	MaxThrowSpeed   float64 // hardest possible throw, px/s
	Restitution     float64 // wall bounce energy factor
	RestSpeed       float64 // below this the grenade is considered at rest
}

// FrictionMult returns the ground friction multiplier at the given speed.
// A fast grenade slides on reduced friction; as it slows below the ramp
// velocity the multiplier climbs quadratically back to full grip, so the
// roll dies quickly once it loses pace.
func FrictionMult(speed float64, prof *GrenadeProfile) float64 {
	if prof.RampVelocity <= 0 || speed >= prof.RampVelocity {
		return prof.MinFrictionMult
	}
	t := speed / prof.RampVelocity
	return prof.MinFrictionMult + (1-prof.MinFrictionMult)*(1-t*t)
}

// StepGrenade advances a rolling grenade by one symplectic Euler step:
// friction damps the velocity first, then the damped velocity moves the
// position
func StepGrenade(k *core.Kinetic, prof *GrenadeProfile, dt float64) {
	speed := k.Speed()
	if speed > 0 {
		newSpeed := speed - prof.Friction*FrictionMult(speed, prof)*dt
		if newSpeed <= prof.RestSpeed {
			k.VelX, k.VelY = 0, 0
		} else {
			scale := newSpeed / speed
			k.VelX *= scale
			k.VelY *= scale
		}
	}
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
}

// BounceGrenade reflects a grenade off a surface, bleeding energy into
// the restitution factor. A degenerate normal leaves the velocity alone.
func BounceGrenade(k *core.Kinetic, normalX, normalY float64, prof *GrenadeProfile) {
	nx, ny := vmath.Normalize2D(normalX, normalY)
	if nx == 0 && ny == 0 {
		return
	}
	rx, ry := vmath.Reflect(k.VelX, k.VelY, nx, ny)
	k.VelX = rx * prof.Restitution
	k.VelY = ry * prof.Restitution
}

// rollStepCap bounds the rest simulation. The slowest legal roll stops in
// well under 1000 ticks.
const rollStepCap = 4096

// RollDistance simulates an unobstructed straight roll from the given
// launch speed to rest and returns the distance covered. It steps exactly
// like StepGrenade at the fixed tick, so a thrown grenade stops where
// this says it will.
func RollDistance(speed float64, prof *GrenadeProfile) float64 {
	k := core.Kinetic{VelX: speed}
	for i := 0; i < rollStepCap && (k.VelX != 0 || k.VelY != 0); i++ {
		StepGrenade(&k, prof, parameter.TickSeconds)
	}
	return k.X
}

// ThrowSpeedForDistance returns the launch speed that rolls a grenade to
// rest at the given distance. Above the slow-phase tail the constant
// friction of the fast phase admits a closed-form inverse; short throws
// fall back to bisection over the roll simulation. The result never
// exceeds the maximum throw speed, so far targets get an undershoot.
func ThrowSpeedForDistance(distance float64, prof *GrenadeProfile) float64 {
	if distance <= 0 {
		return 0
	}
	tail := RollDistance(prof.RampVelocity, prof)
	if distance > tail {
		a := prof.Friction * prof.MinFrictionMult
		v := math.Sqrt(prof.RampVelocity*prof.RampVelocity + 2*a*(distance-tail))
		return math.Min(v, prof.MaxThrowSpeed)
	}

	lo, hi := 0.0, prof.RampVelocity
	for i := 0; i < 48; i++ {
		mid := (lo + hi) / 2
		if RollDistance(mid, prof) < distance {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
