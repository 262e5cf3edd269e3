package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/vmath"
)

func breakerProfile() *caliber.Profile {
	return &caliber.Profile{
		Name:              "breaker",
		Breaker:           true,
		ExplosionDamage:   40,
		ShrapnelDamage:    6,
		ShrapnelCountMult: 0.4,
		MaxShrapnel:       12,
	}
}

func TestShrapnelCountClamp(t *testing.T) {
	prof := breakerProfile()
	cases := []struct {
		damage, mult float64
		want         int
	}{
		{30, 1, 12},   // 30 * 0.4 = 12, right at the cap
		{20, 1, 8},    // plain rounding
		{21, 0.5, 4},  // 4.2 rounds down
		{5, 0.1, 1},   // rounds to 0, floored to 1
		{0, 1, 1},     // no damage still throws one fragment
		{1000, 1, 12}, // capped per detonation
	}
	for _, c := range cases {
		if got := ShrapnelCount(c.damage, c.mult, prof); got != c.want {
			t.Errorf("ShrapnelCount(%v, %v) = %d, want %d", c.damage, c.mult, got, c.want)
		}
	}
}

func TestShrapnelOffsetsFan(t *testing.T) {
	rng := vmath.NewFastRand(42)
	offsets := ShrapnelOffsets(5, 30, rng, nil)
	if len(offsets) != 5 {
		t.Fatalf("offset count = %d, want 5", len(offsets))
	}
	half := 30 * vmath.DegToRad
	for i, off := range offsets {
		if math.Abs(off) > half {
			t.Errorf("offset %d = %v rad, outside ±%v", i, off, half)
		}
		if i > 0 && off <= offsets[i-1] {
			t.Errorf("offsets not ascending at %d: %v <= %v", i, off, offsets[i-1])
		}
	}
}

func TestShrapnelOffsetsDeterministic(t *testing.T) {
	a := ShrapnelOffsets(8, 30, vmath.NewFastRand(7), nil)
	b := ShrapnelOffsets(8, 30, vmath.NewFastRand(7), nil)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("offset %d differs across identical seeds: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestShrapnelOffsetsEdges(t *testing.T) {
	rng := vmath.NewFastRand(1)

	single := ShrapnelOffsets(1, 30, rng, nil)
	if len(single) != 1 || single[0] != 0 {
		t.Errorf("single fragment offsets = %v, want [0]", single)
	}

	if got := ShrapnelOffsets(0, 30, rng, nil); len(got) != 0 {
		t.Errorf("zero fragments produced %d offsets", len(got))
	}

	flat := ShrapnelOffsets(4, 0, rng, nil)
	for i, off := range flat {
		if off != 0 {
			t.Errorf("zero-arc offset %d = %v, want 0", i, off)
		}
	}
}

func TestShrapnelOffsetsReusesBuffer(t *testing.T) {
	buf := make([]float64, 0, 16)
	out := ShrapnelOffsets(8, 30, vmath.NewFastRand(3), buf)
	if len(out) != 8 || cap(out) != 16 {
		t.Errorf("buffer not reused: len %d cap %d", len(out), cap(out))
	}
}
