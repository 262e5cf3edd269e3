package physics

import "github.com/lixenwraith/ballistic/parameter"

// DefaultGrenade is the stock grenade ground physics
var DefaultGrenade = GrenadeProfile{
	Friction:        parameter.GrenadeGroundFriction,
	MinFrictionMult: parameter.GrenadeMinFrictionMult,
	RampVelocity:    parameter.GrenadeFrictionRampVelocity,
	MaxThrowSpeed:   parameter.GrenadeMaxThrowSpeed,
	Restitution:     parameter.GrenadeRestitution,
	RestSpeed:       parameter.GrenadeRestSpeed,
}
