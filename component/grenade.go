package component

import (
	"github.com/lixenwraith/ballistic/core"
)

// GrenadeComponent tracks a live grenade from pin pull to detonation.
// The fuse keeps burning while the grenade rolls, so one that was held
// long before the throw can burst mid-flight.
type GrenadeComponent struct {
	Thrower  core.Entity
	FuseLeft float64 // seconds until detonation, counted from pin pull
	Radius   float64 // blast radius
	Damage   float64
	Resting  bool // rolled to a stop
}
