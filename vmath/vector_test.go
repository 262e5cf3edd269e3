package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNormalize2D(t *testing.T) {
	nx, ny := Normalize2D(3, 4)
	if !almostEqual(nx, 0.6) || !almostEqual(ny, 0.8) {
		t.Errorf("Normalize2D(3,4) = (%v, %v), want (0.6, 0.8)", nx, ny)
	}

	nx, ny = Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Normalize2D(0,0) = (%v, %v), want (0, 0)", nx, ny)
	}

	nx, ny = Normalize2D(-5, 0)
	if !almostEqual(nx, -1) || !almostEqual(ny, 0) {
		t.Errorf("Normalize2D(-5,0) = (%v, %v), want (-1, 0)", nx, ny)
	}
}

func TestReflectPreservesIncidence(t *testing.T) {
	// d·n == -(r·n) for any direction/normal pair
	cases := []struct {
		dx, dy, nx, ny float64
	}{
		{1, 0, 0, 1},
		{0.6, -0.8, 0, 1},
		{-0.707, 0.707, 1, 0},
		{0.866, 0.5, -0.707, -0.707},
	}
	for _, c := range cases {
		rx, ry := Reflect(c.dx, c.dy, c.nx, c.ny)
		in := DotProduct(c.dx, c.dy, c.nx, c.ny)
		out := DotProduct(rx, ry, c.nx, c.ny)
		if !almostEqual(in, -out) {
			t.Errorf("Reflect(%v,%v off %v,%v): d·n=%v, r·n=%v, want negation",
				c.dx, c.dy, c.nx, c.ny, in, out)
		}
		// Reflection preserves magnitude
		if !almostEqual(Magnitude(c.dx, c.dy), Magnitude(rx, ry)) {
			t.Errorf("Reflect changed magnitude: %v -> %v",
				Magnitude(c.dx, c.dy), Magnitude(rx, ry))
		}
	}
}

func TestReflectParallelGraze(t *testing.T) {
	// Travel parallel to a floor, normal straight up: direction unchanged
	rx, ry := Reflect(1, 0, 0, 1)
	if !almostEqual(rx, 1) || !almostEqual(ry, 0) {
		t.Errorf("parallel graze reflected to (%v, %v), want (1, 0)", rx, ry)
	}

	// Head-on into the floor: direction fully inverted
	rx, ry = Reflect(0, -1, 0, 1)
	if !almostEqual(rx, 0) || !almostEqual(ry, 1) {
		t.Errorf("head-on reflected to (%v, %v), want (0, 1)", rx, ry)
	}
}

func TestRotateVector(t *testing.T) {
	rx, ry := RotateVector(1, 0, math.Pi/2)
	if !almostEqual(rx, 0) || !almostEqual(ry, 1) {
		t.Errorf("RotateVector(1,0,90°) = (%v, %v), want (0, 1)", rx, ry)
	}

	rx, ry = RotateVector(1, 0, math.Pi)
	if !almostEqual(rx, -1) || !almostEqual(ry, 0) {
		t.Errorf("RotateVector(1,0,180°) = (%v, %v), want (-1, 0)", rx, ry)
	}
}

func TestCross2DPerpendicularDistance(t *testing.T) {
	// Point at (3, 4) against the +X axis: perpendicular distance is 4
	d := Abs(Cross2D(3, 4, 1, 0))
	if !almostEqual(d, 4) {
		t.Errorf("perp distance = %v, want 4", d)
	}
}

func TestAngleBetween(t *testing.T) {
	if a := AngleBetween(1, 0, 0, 1); !almostEqual(a, math.Pi/2) {
		t.Errorf("AngleBetween orthogonal = %v, want pi/2", a)
	}
	if a := AngleBetween(1, 0, -1, 0); !almostEqual(a, math.Pi) {
		t.Errorf("AngleBetween opposite = %v, want pi", a)
	}
	if a := AngleBetween(1, 0, 0, 0); a != 0 {
		t.Errorf("AngleBetween with zero vector = %v, want 0", a)
	}
}

func TestSignedAngle(t *testing.T) {
	if a := SignedAngle(1, 0, 0, 1); !almostEqual(a, math.Pi/2) {
		t.Errorf("SignedAngle ccw = %v, want pi/2", a)
	}
	if a := SignedAngle(1, 0, 0, -1); !almostEqual(a, -math.Pi/2) {
		t.Errorf("SignedAngle cw = %v, want -pi/2", a)
	}
}

func TestClampMagnitude(t *testing.T) {
	cx, cy := ClampMagnitude(3, 4, 10)
	if cx != 3 || cy != 4 {
		t.Errorf("under-limit vector changed: (%v, %v)", cx, cy)
	}

	cx, cy = ClampMagnitude(3, 4, 2.5)
	if !almostEqual(Magnitude(cx, cy), 2.5) {
		t.Errorf("clamped magnitude = %v, want 2.5", Magnitude(cx, cy))
	}
	// Direction preserved
	nx1, ny1 := Normalize2D(3, 4)
	nx2, ny2 := Normalize2D(cx, cy)
	if !almostEqual(nx1, nx2) || !almostEqual(ny1, ny2) {
		t.Errorf("clamp changed direction")
	}
}
