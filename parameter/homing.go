package parameter

// Homing target selection and steering
const (
	// HomingMaxAngleDeg bounds both the candidate acceptance cone around the
	// aim line and the cumulative turn from the original firing direction
	HomingMaxAngleDeg = 110.0

	// HomingMaxPerpDistance is the widest perpendicular offset in pixels from
	// the aim line a candidate may have
	HomingMaxPerpDistance = 500.0

	// HomingDistanceWeight scales raw distance in the candidate score;
	// perpendicular alignment dominates, distance only breaks ties
	HomingDistanceWeight = 0.1

	// HomingMinTargetDistance rejects candidates closer than this in pixels,
	// avoiding degenerate zero-length aim vectors
	HomingMinTargetDistance = 1.0

	// HomingSteerRateDeg is the default per-second turn rate in degrees while
	// a homing round tracks its target
	HomingSteerRateDeg = 180.0
)
