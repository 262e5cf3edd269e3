package engine

import (
	"github.com/lixenwraith/ballistic/component"
	"github.com/lixenwraith/ballistic/core"
)

// EntityBuilder provides a fluent interface for constructing entities.
// It reserves an entity ID upfront and writes components to the typed
// stores as they are supplied
//
// Example usage:
//
//	e := world.NewEntity().
//	    WithKinetic(component.KineticComponent{}).
//	    WithActor(component.ActorComponent{Alive: true}).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a builder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

func (b *EntityBuilder) WithKinetic(k component.KineticComponent) *EntityBuilder {
	b.assertOpen()
	b.world.Components.Kinetics.SetComponent(b.entity, k)
	return b
}

func (b *EntityBuilder) WithProjectile(p component.ProjectileComponent) *EntityBuilder {
	b.assertOpen()
	b.world.Components.Projectiles.SetComponent(b.entity, p)
	return b
}

func (b *EntityBuilder) WithActor(a component.ActorComponent) *EntityBuilder {
	b.assertOpen()
	b.world.Components.Actors.SetComponent(b.entity, a)
	return b
}

func (b *EntityBuilder) WithWeapon(wc component.WeaponComponent) *EntityBuilder {
	b.assertOpen()
	b.world.Components.Weapons.SetComponent(b.entity, wc)
	return b
}

func (b *EntityBuilder) WithGrenade(g component.GrenadeComponent) *EntityBuilder {
	b.assertOpen()
	b.world.Components.Grenades.SetComponent(b.entity, g)
	return b
}

// Build finalizes construction and returns the entity ID
func (b *EntityBuilder) Build() core.Entity {
	b.built = true
	return b.entity
}

func (b *EntityBuilder) assertOpen() {
	if b.built {
		panic("entity already built - cannot add components after Build()")
	}
}
