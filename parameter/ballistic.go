package parameter

// Surface escape
const (
	// BallisticSurfaceNudge is the distance in pixels a projectile is advanced
	// along its new heading after a ricochet or penetration entry, so the next
	// tick does not re-collide with the surface it just resolved
	BallisticSurfaceNudge = 5.0

	// BallisticMinSpeed is the speed floor in px/s below which a projectile is
	// considered spent and terminates
	BallisticMinSpeed = 10.0
)

// Ricochet
const (
	// RicochetFloorProbabilityFactor scales the base ricochet probability at the
	// maximum reflectable angle; the chance falls linearly from the base value
	// at a parallel graze down to base * factor at the angle cap
	RicochetFloorProbabilityFactor = 0.5

	// RicochetTravelReference is the reference distance in pixels for the
	// optional post-ricochet travel constraint; the allowance shrinks with
	// steeper impact angles
	RicochetTravelReference = 1500.0
)

// Penetration
const (
	// PenetrationPointBlankFraction is the fraction of a caliber's reference
	// range inside which entry is certain and the ricochet roll is skipped
	PenetrationPointBlankFraction = 0.05

	// PenetrationFarChance is the entry probability once the shot distance
	// reaches the caliber's full reference range
	PenetrationFarChance = 0.30

	// PenetrationProbeLength is the probe ray length in pixels used to detect
	// the far side of an obstacle, twice the thinnest expected wall
	PenetrationProbeLength = 32.0

	// PenetrationThicknessBudget is the maximum depth in pixels a projectile
	// may spend inside one obstacle before it is force-exited
	PenetrationThicknessBudget = 100.0
)
