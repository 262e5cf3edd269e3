package system

import (
	"github.com/lixenwraith/ballistic/engine"
)

// Register wires the standard simulation suite into a context. Hosts
// that replace a reference system register their own mix instead.
func Register(c *engine.Context) {
	c.AddSystem(NewWeaponSystem(c.World))
	c.AddSystem(NewGrenadeSystem(c.World))
	c.AddSystem(NewProjectileSystem(c.World))
	c.AddSystem(NewCombatSystem(c.World))
}
