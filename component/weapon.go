package component

import (
	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/core"
)

// WeaponComponent tracks an actor's equipped weapon and fire readiness
type WeaponComponent struct {
	Caliber       *caliber.Profile
	CooldownTicks int         // ticks until the next shot is allowed
	LastTarget    core.Entity // most recent homing lock, telemetry only
}
