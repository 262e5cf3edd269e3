package event

// EventType represents the type of simulation event
type EventType int

const (
	// === Engine Event ===

	// EventSimReset clears all transient simulation state
	// Trigger: Host on scenario restart
	// Consumer: All systems | Payload: nil
	EventSimReset EventType = iota

	// === Command Event ===

	// EventFireRequest asks the weapon system to discharge a weapon
	// Trigger: Host input layer
	// Consumer: WeaponSystem | Payload: *FireRequestPayload
	EventFireRequest

	// EventGrenadeThrowRequest asks the grenade system to launch a grenade
	// Trigger: Host input layer on pin release
	// Consumer: GrenadeSystem | Payload: *GrenadeThrowRequestPayload
	EventGrenadeThrowRequest

	// === Combat Event ===

	// EventDamageRequest applies damage to a single actor
	// Trigger: ProjectileSystem on actor strike
	// Consumer: CombatSystem | Payload: *DamageRequestPayload (pooled)
	EventDamageRequest

	// EventAreaDamageRequest applies damage to every actor caught in a blast
	// Trigger: ProjectileSystem detonations, GrenadeSystem fuses
	// Consumer: CombatSystem | Payload: *BatchPayload[AreaDamageEntry] (pooled)
	EventAreaDamageRequest

	// EventActorKilled signals an actor dropped to zero health
	// Trigger: CombatSystem
	// Consumer: Host | Payload: *ActorKilledPayload
	EventActorKilled

	// === Projectile Event ===

	// EventProjectileSpawned signals a projectile entered flight
	// Trigger: WeaponSystem fire, ProjectileSystem shrapnel fan
	// Consumer: Host | Payload: *ProjectileSpawnedPayload
	EventProjectileSpawned

	// EventProjectileTerminated signals a projectile left the simulation
	// Trigger: ProjectileSystem
	// Consumer: Host | Payload: packed uint64, see EmitProjectileTerminated
	EventProjectileTerminated

	// === Effect Event ===

	// EventImpactEffectRequest asks the host for a surface impact visual
	// Trigger: ProjectileSystem on terminal wall or actor strike
	// Consumer: Host | Payload: *ImpactEffectPayload
	EventImpactEffectRequest

	// EventRicochetEffectRequest asks the host for a ricochet spark
	// Trigger: ProjectileSystem on reflection
	// Consumer: Host | Payload: *RicochetEffectPayload
	EventRicochetEffectRequest

	// EventPenetrationEffectRequest asks the host for a wall dust puff
	// Trigger: ProjectileSystem on wall entry and exit
	// Consumer: Host | Payload: *PenetrationEffectPayload
	EventPenetrationEffectRequest

	// EventDetonationEffectRequest asks the host for an explosion visual
	// Trigger: ProjectileSystem breaker detonation
	// Consumer: Host | Payload: *DetonationEffectPayload
	EventDetonationEffectRequest

	// EventGrenadeDetonated signals a grenade fuse ran out
	// Trigger: GrenadeSystem
	// Consumer: Host | Payload: *GrenadeDetonatedPayload
	EventGrenadeDetonated

	// EventSoundRequest asks the host to play a positioned sound cue
	// Trigger: Any system with audible feedback
	// Consumer: Host | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent is a single simulation event stamped with its originating frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// TerminationKind is packed into EventProjectileTerminated payloads
type TerminationKind uint16

const (
	TerminatedHit TerminationKind = iota // struck an actor or surface
	TerminatedExpired
	TerminatedDetonated
	TerminatedStopped // absorbed by a wall it failed to enter
)
