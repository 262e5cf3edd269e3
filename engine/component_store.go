package engine

import (
	"github.com/lixenwraith/ballistic/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Initialized once per system to eliminate runtime lookup
type ComponentStore struct {
	Kinetics    *Store[component.KineticComponent]
	Projectiles *Store[component.ProjectileComponent]
	Actors      *Store[component.ActorComponent]
	Weapons     *Store[component.WeaponComponent]
	Grenades    *Store[component.GrenadeComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetics:    NewStore[component.KineticComponent](),
		Projectiles: NewStore[component.ProjectileComponent](),
		Actors:      NewStore[component.ActorComponent](),
		Weapons:     NewStore[component.WeaponComponent](),
		Grenades:    NewStore[component.GrenadeComponent](),
	}
}

// all returns the stores as the type-erased lifecycle set
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Kinetics,
		c.Projectiles,
		c.Actors,
		c.Weapons,
		c.Grenades,
	}
}

// GetComponentStore returns the world's typed store set
// Call once during system construction; pointers remain valid for the
// world's lifetime
func GetComponentStore(w *World) ComponentStore {
	return w.Components
}
