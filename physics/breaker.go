package physics

import (
	"math"

	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/vmath"
)

// ShrapnelCount returns the fragment count for a detonation carrying the
// given damage. At least one fragment always flies. The per-detonation
// cap applies here; the global shrapnel budget is claimed by the caller.
func ShrapnelCount(damage, damageMult float64, prof *caliber.Profile) int {
	n := int(math.Round(damage * damageMult * prof.ShrapnelCountMult))
	if n < 1 {
		n = 1
	}
	if n > prof.MaxShrapnel {
		n = prof.MaxShrapnel
	}
	return n
}

// ShrapnelOffsets fills dst with angular offsets in radians fanning count
// fragments evenly across ±halfAngleDeg around the travel direction, each
// jittered inside its own slot so fragments never cross. A single
// fragment flies straight ahead.
func ShrapnelOffsets(count int, halfAngleDeg float64, rng *vmath.FastRand, dst []float64) []float64 {
	dst = dst[:0]
	if count <= 0 {
		return dst
	}
	half := halfAngleDeg * vmath.DegToRad
	if count == 1 || half <= 0 {
		for i := 0; i < count; i++ {
			dst = append(dst, 0)
		}
		return dst
	}
	slot := 2 * half / float64(count)
	for i := 0; i < count; i++ {
		center := -half + slot*(float64(i)+0.5)
		dst = append(dst, center+rng.Range(-slot/4, slot/4))
	}
	return dst
}
