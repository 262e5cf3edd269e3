package parameter

// Breaker proximity detonation
const (
	// BreakerDetonationDistance is the forward trigger ray length in pixels;
	// a wall or living target inside this range detonates the round early
	BreakerDetonationDistance = 60.0

	// BreakerExplosionRadius is the point-damage radius in pixels around the
	// detonation center
	BreakerExplosionRadius = 15.0

	// BreakerShrapnelHalfAngleDeg is the half-angle in degrees of the forward
	// cone the shrapnel fan covers
	BreakerShrapnelHalfAngleDeg = 30.0

	// BreakerShrapnelBudget caps concurrent shrapnel fragments across the whole
	// simulation; a soft cap enforced through an atomic counter
	BreakerShrapnelBudget = 60
)
