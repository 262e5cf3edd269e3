package caliber

// Built-in profiles cover the stock arsenal. Loaded definition files may
// override any of them by name.

// Pistol is the fallback sidearm round, short lived with a lucky bounce
var Pistol = Profile{
	Name:          "pistol",
	MuzzleSpeed:   900,
	BaseDamage:    12,
	Lifetime:      1.5,
	PelletCount:   1,
	CooldownTicks: 9,

	CanRicochet:             true,
	MaxRicochets:            1,
	MaxRicochetAngleDeg:     25,
	BaseRicochetProbability: 0.35,
	VelocityRetention:       0.75,
	RicochetDamageMult:      0.65,
	RicochetDeviationDeg:    6,
}

// Rifle trades the pistol's bounce odds for a single wall penetration
var Rifle = Profile{
	Name:          "rifle",
	MuzzleSpeed:   1400,
	BaseDamage:    25,
	Lifetime:      2,
	PelletCount:   1,
	CooldownTicks: 6,

	CanRicochet:             true,
	MaxRicochets:            2,
	MaxRicochetAngleDeg:     30,
	BaseRicochetProbability: 0.55,
	VelocityRetention:       0.8,
	RicochetDamageMult:      0.7,
	RicochetDeviationDeg:    4,

	CanPenetrate:              true,
	MaxWallPenetrations:       1,
	MaxPenetrationDistance:    900,
	PostPenetrationDamageMult: 0.6,
}

// Sniper keeps most of its energy through bounces and walls and flies on
// through soft targets
var Sniper = Profile{
	Name:          "sniper",
	MuzzleSpeed:   2200,
	BaseDamage:    90,
	Lifetime:      2.5,
	PelletCount:   1,
	CooldownTicks: 90,
	PiercesActors: true,

	CanRicochet:             true,
	MaxRicochets:            3,
	MaxRicochetAngleDeg:     35,
	BaseRicochetProbability: 0.85,
	VelocityRetention:       0.9,
	RicochetDamageMult:      0.8,
	RicochetDeviationDeg:    2,
	ConstrainRicochetTravel: true,

	CanPenetrate:              true,
	MaxWallPenetrations:       2,
	MaxPenetrationDistance:    1600,
	PostPenetrationDamageMult: 0.75,
}

// Shotgun fires a fan of weak pellets, each with its own bounce roll
var Shotgun = Profile{
	Name:          "shotgun",
	MuzzleSpeed:   1000,
	BaseDamage:    8,
	Lifetime:      0.5,
	PelletCount:   8,
	SpreadDeg:     12,
	CooldownTicks: 54,

	CanRicochet:             true,
	MaxRicochets:            1,
	MaxRicochetAngleDeg:     20,
	BaseRicochetProbability: 0.25,
	VelocityRetention:       0.7,
	RicochetDamageMult:      0.6,
	RicochetDeviationDeg:    8,
}

// BreakerRound detonates just short of whatever it is about to hit and
// showers the impact point with fragments
var BreakerRound = Profile{
	Name:          "breaker",
	MuzzleSpeed:   1100,
	BaseDamage:    30,
	Lifetime:      2,
	PelletCount:   1,
	CooldownTicks: 30,

	Breaker:           true,
	ExplosionDamage:   40,
	ShrapnelDamage:    6,
	ShrapnelCountMult: 0.4,
	MaxShrapnel:       12,
}

// Seeker steers toward the locked target within its turn limits
var Seeker = Profile{
	Name:          "seeker",
	MuzzleSpeed:   700,
	BaseDamage:    18,
	Lifetime:      3,
	PelletCount:   1,
	CooldownTicks: 45,

	Homing:       true,
	SteerRateDeg: 180,
}

// Fragment is the shrapnel spawned by a breaker detonation, dumb and brief
var Fragment = Profile{
	Name:        "fragment",
	MuzzleSpeed: 800,
	BaseDamage:  6,
	Lifetime:    0.35,
	PelletCount: 1,
}

// Builtin returns a fresh name-to-profile map of the stock arsenal.
// The map owns copies so loaded overrides never touch the package vars.
func Builtin() map[string]*Profile {
	stock := []Profile{Pistol, Rifle, Sniper, Shotgun, BreakerRound, Seeker, Fragment}
	m := make(map[string]*Profile, len(stock))
	for i := range stock {
		p := stock[i]
		p.Clamp()
		m[p.Name] = &p
	}
	return m
}
