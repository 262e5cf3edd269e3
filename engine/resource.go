package engine

import (
	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/event"
	"github.com/lixenwraith/ballistic/physics"
	"github.com/lixenwraith/ballistic/status"
	"github.com/lixenwraith/ballistic/vmath"
)

// Resource holds singleton simulation resources, initialized during
// Context creation, accessed via World.Resources
type Resource struct {
	Time    *TimeResource
	Rand    *RandResource
	Event   *EventQueueResource
	Arsenal *ArsenalResource

	// Telemetry
	Status   *status.Registry
	Shrapnel *status.Budget // global live shrapnel cap

	// Host environment bindings, defaulted by NewContext when the
	// host supplies none
	Raycast Raycaster
	Actors  ActorQuery
}

// GetResourceStore returns the world's resource set
// Call once during system construction
func GetResourceStore(w *World) Resource {
	return w.Resources
}

// === World Resources ===

// TimeResource carries tick timing for systems
// Updated by the Context at the start of each tick
type TimeResource struct {
	// DeltaTime is the fixed seconds per tick
	DeltaTime float64

	// FrameNumber is the current tick index
	FrameNumber int64

	// Elapsed is simulation seconds since start or reset
	Elapsed float64
}

// RandResource carries the deterministic random streams
type RandResource struct {
	// Seed reproduces the whole run
	Seed uint64

	// Rand is the shared stream for single-threaded draws (spread, jitter)
	Rand *vmath.FastRand
}

// ProjectileRand derives the roll source for one projectile on one frame.
// Draws depend only on seed, entity, and frame, so parallel and serial
// stepping produce identical outcomes.
func (r *RandResource) ProjectileRand(e core.Entity, frame int64) vmath.FastRand {
	return vmath.SeededAt(r.Seed, uint64(e), uint64(frame))
}

// EventQueueResource exposes the outbound event queue to systems
type EventQueueResource struct {
	Queue *event.EventQueue
}

// ArsenalResource carries the loaded ballistic configuration
type ArsenalResource struct {
	Calibers map[string]*caliber.Profile
	Grenade  *physics.GrenadeProfile
}

// Profile returns the named caliber
func (a *ArsenalResource) Profile(name string) (*caliber.Profile, bool) {
	p, ok := a.Calibers[name]
	return p, ok
}
