package component

import (
	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/core"
)

// ProjectileState represents lifecycle state
type ProjectileState uint8

const (
	ProjectileFlying      ProjectileState = iota // In free flight
	ProjectilePenetrating                        // Inside an obstacle
	ProjectileHit                                // Terminal, struck an actor or stopped in a wall
	ProjectileExpired                            // Terminal, lifetime or travel limit ran out
	ProjectileDetonated                          // Terminal, breaker proximity detonation
)

// Terminal reports whether the state ends the projectile's life
func (s ProjectileState) Terminal() bool {
	return s >= ProjectileHit
}

// ObstacleRef identifies the obstacle a projectile is inside of. Grid
// tiles are identified by coordinates, host obstacles by entity. The
// zero value matches nothing.
type ObstacleRef struct {
	Kind         core.HitKind
	Entity       core.Entity
	TileX, TileY int
}

// NewObstacleRef captures the obstacle identity of an impact
func NewObstacleRef(ev core.ImpactEvent) ObstacleRef {
	return ObstacleRef{
		Kind:   ev.Kind,
		Entity: ev.Hit,
		TileX:  ev.TileX,
		TileY:  ev.TileY,
	}
}

// ProjectileComponent holds per-projectile ballistic state (pure data)
type ProjectileComponent struct {
	State   ProjectileState
	Caliber *caliber.Profile // shared immutable profile
	Shooter core.Entity      // excluded from self-hits
	Team    core.Team        // hostility filter for actor strikes

	// Damage
	BaseDamage float64 // per-projectile damage before the multiplier
	DamageMult float64 // never increases across bounces and walls

	// Flight bookkeeping
	OriginDirX     float64 // firing direction, fixed at spawn, turn budget reference
	OriginDirY     float64
	TravelDistance float64     // total px flown
	LifetimeTicks  int         // remaining ticks before expiry
	LastActorHit   core.Entity // body a piercing round passed through, excluded from sweeps

	// Ricochet
	RicochetCount  int
	HasTravelLimit bool    // set by travel-constrained calibers on bounce
	TravelLimit    float64 // remaining px of flight once limited

	// Penetration
	WallsPenetrated  int
	PenetrationDepth float64     // px advanced inside the current obstacle
	Obstacle         ObstacleRef // obstacle being penetrated

	// Homing
	Target core.Entity // locked at fire time, InvalidEntity = none

	// Shrapnel
	Shrapnel bool // claimed from the global budget, released on termination
}
