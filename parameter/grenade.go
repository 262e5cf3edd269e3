package parameter

// Grenade ground physics
// The friction model is two-phase: above the ramp velocity a sliding grenade
// feels only the minimum multiplier, below it the multiplier blends
// quadratically up to full friction so rolls settle instead of stopping dead
const (
	// GrenadeGroundFriction is the base deceleration in px/s²
	GrenadeGroundFriction = 300.0

	// GrenadeMinFrictionMult is the friction multiplier while sliding fast
	GrenadeMinFrictionMult = 0.5

	// GrenadeFrictionRampVelocity is the speed in px/s below which friction
	// ramps from the minimum multiplier toward full strength
	GrenadeFrictionRampVelocity = 200.0

	// GrenadeMaxThrowSpeed caps the initial throw in px/s
	GrenadeMaxThrowSpeed = 850.0

	// GrenadeRestitution is the speed retained on a wall bounce
	GrenadeRestitution = 0.45

	// GrenadeRestSpeed is the speed floor in px/s below which a grenade is at rest
	GrenadeRestSpeed = 0.001
)

// Grenade fuse
const (
	// GrenadeFuseTime is seconds from pin pull to detonation; the timer runs
	// while the grenade is still held, so a delayed throw shortens the flight
	GrenadeFuseTime = 4.0
)

// Grenade blast
const (
	// GrenadeBlastRadius is the area damage radius in pixels
	GrenadeBlastRadius = 100.0

	// GrenadeDamage is the point damage applied to every actor caught in
	// the blast radius
	GrenadeDamage = 60.0

	// GrenadeBounceClearance is the distance in pixels a bounced grenade is
	// pushed off the surface along the normal before its next ground step
	GrenadeBounceClearance = 1.0
)
