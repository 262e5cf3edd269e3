package event

import (
	"github.com/lixenwraith/ballistic/core"
)

// FireRequestPayload carries a host fire command
type FireRequestPayload struct {
	Shooter    core.Entity
	AimX, AimY float64 // desired fire direction, need not be unit length
}

// GrenadeThrowRequestPayload carries a host grenade throw.
// HoldTime is how long the pin has been out; the fuse keeps burning from
// there, so a long-held grenade can air burst.
type GrenadeThrowRequestPayload struct {
	Thrower          core.Entity
	TargetX, TargetY float64
	HoldTime         float64
}

// DamageRequestPayload applies damage to one actor. Pooled; the consumer
// releases it back through ReleaseDamageRequest.
type DamageRequestPayload struct {
	Target, Source core.Entity
	Amount         float64
	DirX, DirY     float64 // strike direction for host knockback cues
}

// AreaDamageEntry is one victim of a blast inside a batched area damage
// request
type AreaDamageEntry struct {
	Target, Source core.Entity
	Amount         float64
}

// ActorKilledPayload signals a death resolved by combat
type ActorKilledPayload struct {
	Actor, Killer core.Entity
	X, Y          float64
}

// ProjectileSpawnedPayload describes a projectile entering flight
type ProjectileSpawnedPayload struct {
	Projectile, Shooter core.Entity
	X, Y                float64
	DirX, DirY          float64
	Caliber             string
	Shrapnel            bool // spawned by a detonation rather than a muzzle
}

// ImpactEffectPayload describes a terminal surface or actor strike
type ImpactEffectPayload struct {
	X, Y             float64
	NormalX, NormalY float64
	Kind             core.HitKind
}

// RicochetEffectPayload describes a successful reflection
type RicochetEffectPayload struct {
	X, Y     float64
	AngleDeg float64 // grazing angle of the impact
	Bounce   int     // 1 for the first reflection of a projectile
}

// PenetrationEffectPayload describes a wall entry or exit
type PenetrationEffectPayload struct {
	X, Y float64
	Exit bool
}

// DetonationEffectPayload describes a breaker proximity detonation
type DetonationEffectPayload struct {
	X, Y          float64
	DirX, DirY    float64 // travel direction at detonation, center of the fan
	Radius        float64
	ShrapnelCount int
}

// GrenadeDetonatedPayload signals a grenade fuse ran out
type GrenadeDetonatedPayload struct {
	Grenade  core.Entity
	X, Y     float64
	Radius   float64
	AirBurst bool // fuse expired before the grenade came to rest
}

// SoundID names a host-side sound cue
type SoundID uint8

const (
	SoundFire SoundID = iota
	SoundRicochet
	SoundPenetration
	SoundDetonation
	SoundGrenadeBounce
	SoundImpact
)

// SoundRequestPayload asks the host to play a positioned cue
type SoundRequestPayload struct {
	Sound SoundID
	X, Y  float64
}
