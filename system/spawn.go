package system

import (
	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/component"
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/engine"
	"github.com/lixenwraith/ballistic/event"
)

// shotSpec describes one projectile to launch. Direction must be unit
// length; speed comes from the profile.
type shotSpec struct {
	prof       *caliber.Profile
	shooter    core.Entity
	team       core.Team
	x, y       float64
	dirX, dirY float64
	damage     float64
	target     core.Entity
	shrapnel   bool
}

// spawnShot creates a projectile entity in flight and announces it on
// the event queue. Shared by the weapon muzzle and the shrapnel fan.
func spawnShot(w *engine.World, sp shotSpec) core.Entity {
	e := w.NewEntity().
		WithKinetic(component.KineticComponent{Kinetic: core.Kinetic{
			X:    sp.x,
			Y:    sp.y,
			VelX: sp.dirX * sp.prof.MuzzleSpeed,
			VelY: sp.dirY * sp.prof.MuzzleSpeed,
		}}).
		WithProjectile(component.ProjectileComponent{
			State:         component.ProjectileFlying,
			Caliber:       sp.prof,
			Shooter:       sp.shooter,
			Team:          sp.team,
			BaseDamage:    sp.damage,
			DamageMult:    1,
			OriginDirX:    sp.dirX,
			OriginDirY:    sp.dirY,
			LifetimeTicks: sp.prof.LifetimeTicks(),
			Target:        sp.target,
			Shrapnel:      sp.shrapnel,
		}).
		Build()

	w.PushEvent(event.EventProjectileSpawned, &event.ProjectileSpawnedPayload{
		Projectile: e,
		Shooter:    sp.shooter,
		X:          sp.x,
		Y:          sp.y,
		DirX:       sp.dirX,
		DirY:       sp.dirY,
		Caliber:    sp.prof.Name,
		Shrapnel:   sp.shrapnel,
	})
	return e
}
