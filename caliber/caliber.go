package caliber

import (
	"math"

	"github.com/lixenwraith/ballistic/parameter"
)

// Profile is the immutable ballistic configuration for one ammunition type.
// Weapons hold a profile by pointer and every projectile of that caliber
// shares it read-only, so a profile must never be mutated after load.
type Profile struct {
	Name string `json:"name"`

	// Flight
	MuzzleSpeed   float64 `json:"muzzle_speed"`   // px/s at the barrel
	BaseDamage    float64 `json:"base_damage"`    // per projectile before multipliers
	Lifetime      float64 `json:"lifetime"`       // seconds of flight before expiry
	PelletCount   int     `json:"pellet_count"`   // projectiles per shot, fans above 1
	SpreadDeg     float64 `json:"spread_deg"`     // total fan arc in degrees
	CooldownTicks int     `json:"cooldown_ticks"` // ticks between shots
	PiercesActors bool    `json:"pierces_actors"` // continue flying after wounding a target

	// Ricochet
	CanRicochet             bool    `json:"can_ricochet"`
	MaxRicochets            int     `json:"max_ricochets"` // -1 = unlimited
	MaxRicochetAngleDeg     float64 `json:"max_ricochet_angle_deg"`
	BaseRicochetProbability float64 `json:"base_ricochet_probability"`
	VelocityRetention       float64 `json:"velocity_retention"`
	RicochetDamageMult      float64 `json:"ricochet_damage_mult"`
	RicochetDeviationDeg    float64 `json:"ricochet_deviation_deg"`
	ConstrainRicochetTravel bool    `json:"constrain_ricochet_travel"` // bounded travel after a bounce

	// Penetration
	CanPenetrate              bool    `json:"can_penetrate"`
	MaxWallPenetrations       int     `json:"max_wall_penetrations"`
	MaxPenetrationDistance    float64 `json:"max_penetration_distance"` // reference range for the entry chance falloff
	PostPenetrationDamageMult float64 `json:"post_penetration_damage_mult"`

	// Breaker proximity detonation
	Breaker           bool    `json:"breaker"`
	ExplosionDamage   float64 `json:"explosion_damage"`
	ShrapnelDamage    float64 `json:"shrapnel_damage"`
	ShrapnelCountMult float64 `json:"shrapnel_count_mult"`
	MaxShrapnel       int     `json:"max_shrapnel"` // per detonation, before the global budget

	// Homing
	Homing       bool    `json:"homing"`
	SteerRateDeg float64 `json:"steer_rate_deg"` // deg/s, 0 selects the default rate
}

// Clamp forces every field into its valid range in place.
// Invalid configuration degrades to safe values instead of erroring, so a bad
// definition file yields a dull round rather than NaN in the simulation.
func (p *Profile) Clamp() {
	p.MuzzleSpeed = clampMin(p.MuzzleSpeed, parameter.BallisticMinSpeed)
	p.BaseDamage = clampMin(p.BaseDamage, 0)
	p.Lifetime = clampMin(p.Lifetime, parameter.TickSeconds)
	if p.PelletCount < 1 {
		p.PelletCount = 1
	}
	p.SpreadDeg = clampRange(p.SpreadDeg, 0, 360)
	if p.CooldownTicks < 0 {
		p.CooldownTicks = 0
	}

	if p.MaxRicochets < -1 {
		p.MaxRicochets = -1
	}
	p.MaxRicochetAngleDeg = clampRange(p.MaxRicochetAngleDeg, 0, 90)
	p.BaseRicochetProbability = clampRange(p.BaseRicochetProbability, 0, 1)
	p.VelocityRetention = clampRange(p.VelocityRetention, 0, 1)
	p.RicochetDamageMult = clampRange(p.RicochetDamageMult, 0, 1)
	p.RicochetDeviationDeg = clampRange(p.RicochetDeviationDeg, 0, 180)

	if p.MaxWallPenetrations < 0 {
		p.MaxWallPenetrations = 0
	}
	p.MaxPenetrationDistance = clampMin(p.MaxPenetrationDistance, 1)
	p.PostPenetrationDamageMult = clampRange(p.PostPenetrationDamageMult, 0, 1)

	p.ExplosionDamage = clampMin(p.ExplosionDamage, 0)
	p.ShrapnelDamage = clampMin(p.ShrapnelDamage, 0)
	p.ShrapnelCountMult = clampMin(p.ShrapnelCountMult, 0)
	if p.MaxShrapnel < 1 {
		p.MaxShrapnel = 1
	}

	p.SteerRateDeg = clampRange(p.SteerRateDeg, 0, 3600)
}

// RicochetBudgetLeft reports whether another reflection is allowed after the
// given number of successful bounces
func (p *Profile) RicochetBudgetLeft(bounces int) bool {
	if !p.CanRicochet {
		return false
	}
	return p.MaxRicochets < 0 || bounces < p.MaxRicochets
}

// PenetrationBudgetLeft reports whether another wall entry is allowed after
// the given number of penetrated walls
func (p *Profile) PenetrationBudgetLeft(walls int) bool {
	if !p.CanPenetrate {
		return false
	}
	return walls < p.MaxWallPenetrations
}

// LifetimeTicks converts flight lifetime to whole simulation ticks
func (p *Profile) LifetimeTicks() int {
	return int(p.Lifetime * parameter.TickRate)
}

func clampMin(v, lo float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
