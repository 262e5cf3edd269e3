package status

import "sync/atomic"

// Well-known metric keys. Systems cache the pointers at init and write
// without further lookups.
const (
	MetricProjectilesActive  = "projectiles.active"
	MetricProjectilesSpawned = "projectiles.spawned"
	MetricRicochets          = "projectiles.ricochets"
	MetricPenetrations       = "projectiles.penetrations"
	MetricDetonations        = "projectiles.detonations"
	MetricShrapnelSpawned    = "projectiles.shrapnel_spawned"
	MetricShrapnelDenied     = "projectiles.shrapnel_denied"
	MetricGrenadesActive     = "grenades.active"
	MetricShotsFired         = "weapons.shots_fired"
	MetricDamageDealt        = "combat.damage_dealt"
	MetricKills              = "combat.kills"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Zero resets every registered metric to its zero value
// Cached pointers held by systems stay valid
func (r *Registry) Zero() {
	r.Bools.Range(func(_ string, v *atomic.Bool) {
		v.Store(false)
	})
	r.Ints.Range(func(_ string, v *atomic.Int64) {
		v.Store(0)
	})
	r.Floats.Range(func(_ string, v *AtomicFloat) {
		v.Set(0)
	})
}
